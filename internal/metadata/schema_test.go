package metadata

import (
	"errors"
	"testing"
)

// TestRegisterField_ConflictingCardinality_Fails tests the conflict rule
func TestRegisterField_ConflictingCardinality_Fails(t *testing.T) {
	s := NewSchema()

	err := s.RegisterField(Field{
		RawKey:      "variants",
		EmailName:   "Variant",
		Cardinality: Single,
	})
	if !errors.Is(err, ErrSchemaConflict) {
		t.Errorf("Expected ErrSchemaConflict, got: %v", err)
	}
}

// TestRegisterField_IdenticalDefinition_NoOp tests idempotent registration
func TestRegisterField_IdenticalDefinition_NoOp(t *testing.T) {
	s := NewSchema()

	err := s.RegisterField(Field{
		RawKey:      "variants",
		EmailName:   "Variant",
		Cardinality: List,
	})
	if err != nil {
		t.Errorf("Expected no error re-registering identical field, got: %v", err)
	}
}

// TestRegisterField_NewOptionalField_OneLine tests declarative extension
func TestRegisterField_NewOptionalField_OneLine(t *testing.T) {
	s := NewSchema()

	if err := s.RegisterField(Field{RawKey: "channels", EmailName: "Channel", Cardinality: List, Added: "2.1"}); err != nil {
		t.Fatalf("Expected registration to succeed, got: %v", err)
	}

	raw, err := Parse([]byte("Metadata-Version: 2.1\nName: demo\nVersion: 1.0\nChannel: stable\nChannel: nightly\n"), s)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := s.Validate(raw); err != nil {
		t.Errorf("Expected validation to accept the new field, got: %v", err)
	}

	values, ok := raw["channels"].([]string)
	if !ok || len(values) != 2 {
		t.Errorf("Expected 2 channel values, got %v", raw["channels"])
	}
}

// TestValidate_UnknownKey_Rejected tests the unknown-field invariant
func TestValidate_UnknownKey_Rejected(t *testing.T) {
	raw := RawMetadata{
		"metadata_version": "2.1",
		"name":             "demo",
		"version":          "1.0",
		"bogus":            "value",
	}

	err := Default().Validate(raw)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("Expected ErrUnknownField, got: %v", err)
	}
}

// TestValidate_MissingRequiredField_Rejected tests required-field checks
func TestValidate_MissingRequiredField_Rejected(t *testing.T) {
	raw := RawMetadata{
		"metadata_version": "2.1",
		"name":             "demo",
	}

	err := Default().Validate(raw)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FieldError, got: %v", err)
	}
	if ferr.Field != "version" {
		t.Errorf("Expected missing field 'version', got %q", ferr.Field)
	}
}

// TestValidate_BadProjectName_Rejected tests the name format rule
func TestValidate_BadProjectName_Rejected(t *testing.T) {
	raw := RawMetadata{
		"metadata_version": "2.1",
		"name":             "-leading-hyphen",
		"version":          "1.0",
	}

	err := Default().Validate(raw)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FieldError, got: %v", err)
	}
	if ferr.Field != "name" {
		t.Errorf("Expected offending field 'name', got %q", ferr.Field)
	}
}

// TestValidate_UnknownMetadataVersion_Rejected tests the version allowlist
func TestValidate_UnknownMetadataVersion_Rejected(t *testing.T) {
	raw := RawMetadata{
		"metadata_version": "9.9",
		"name":             "demo",
		"version":          "1.0",
	}

	err := Default().Validate(raw)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FieldError, got: %v", err)
	}
	if ferr.Field != "metadata_version" {
		t.Errorf("Expected offending field 'metadata_version', got %q", ferr.Field)
	}
}

// TestValidate_EmptyVariantValue_Rejected tests the extension's only rule
func TestValidate_EmptyVariantValue_Rejected(t *testing.T) {
	raw := RawMetadata{
		"metadata_version": "2.1",
		"name":             "demo",
		"version":          "1.0",
		"variants":         []string{"cpu", "   "},
	}

	err := Default().Validate(raw)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("Expected FieldError, got: %v", err)
	}
	if ferr.Field != "variants" {
		t.Errorf("Expected offending field 'variants', got %q", ferr.Field)
	}
}

// TestDefault_SameInstance tests process-wide schema construction
func TestDefault_SameInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Expected Default to return the same schema instance")
	}
}

// TestNewRecord_CallerCannotMutate tests record immutability through views
func TestNewRecord_CallerCannotMutate(t *testing.T) {
	raw := RawMetadata{
		"metadata_version": "2.1",
		"name":             "demo",
		"version":          "1.0",
		"variants":         []string{"cpu"},
	}

	rec, err := NewRecord(Default(), raw)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	view := rec.Raw()
	view["name"] = "mutated"
	view["variants"].([]string)[0] = "mutated"

	if rec.Name() != "demo" {
		t.Errorf("Record mutated through raw view: %q", rec.Name())
	}
	if rec.Variants()[0] != "cpu" {
		t.Errorf("Record list mutated through raw view: %v", rec.Variants())
	}
}
