package metadata

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Cardinality describes how many values a metadata field carries.
type Cardinality int

const (
	// Single fields carry exactly one string value.
	Single Cardinality = iota
	// List fields repeat the header name, one value per occurrence.
	List
	// Pairs fields repeat the header name with "Label, value" entries,
	// collected into a label-to-value mapping.
	Pairs
)

// String returns the string representation of the Cardinality.
func (c Cardinality) String() string {
	switch c {
	case Single:
		return "single"
	case List:
		return "list"
	case Pairs:
		return "pairs"
	default:
		return "unknown"
	}
}

// ValidatorFunc checks one field's parsed value. The value is a string,
// []string, or map[string]string depending on the field's cardinality.
type ValidatorFunc func(field string, value interface{}) error

// Field declares one metadata field: its key in the raw mapping, its wire
// header name, its shape, and its validation rule.
type Field struct {
	// RawKey is the key in the parsed RawMetadata mapping, e.g. "author_email".
	RawKey string

	// EmailName is the header name on the wire, e.g. "Author-email".
	// Matching is case-insensitive.
	EmailName string

	Cardinality Cardinality

	// Required fields must be present for validation to pass.
	Required bool

	// Added records the metadata version that introduced the field.
	// Documentation only; never enforced against an artifact's declared
	// version at parse time.
	Added string

	// CommaSeparated marks a List field whose single header line holds
	// comma-separated values (the keywords convention).
	CommaSeparated bool

	// Validate is the field's validation rule, nil for "anything goes".
	Validate ValidatorFunc
}

// Schema is the registry of recognized metadata fields. It is constructed
// once, never mutated afterwards, and safe for concurrent reads.
type Schema struct {
	byEmail map[string]*Field // lowercased EmailName -> definition
	byRaw   map[string]*Field // RawKey -> definition
	fields  []*Field          // registration order
}

// NewSchema builds a schema seeded with the baseline core-metadata fields
// plus the variant extension. Registration of the seed table cannot
// conflict, so failures here are programming errors and panic.
func NewSchema() *Schema {
	s := &Schema{
		byEmail: make(map[string]*Field),
		byRaw:   make(map[string]*Field),
	}
	for _, f := range baselineFields() {
		if err := s.RegisterField(f); err != nil {
			panic(fmt.Sprintf("metadata: seeding schema: %v", err))
		}
	}
	// The one extension over the baseline set: an optional repeatable
	// free-text label. Registered like any other field; the parser is
	// untouched.
	if err := s.RegisterField(Field{
		RawKey:      "variants",
		EmailName:   "Variant",
		Cardinality: List,
		Added:       "2.1",
		Validate:    nonEmptyValues,
	}); err != nil {
		panic(fmt.Sprintf("metadata: registering variant extension: %v", err))
	}
	return s
}

var defaultSchema = sync.OnceValue(NewSchema)

// Default returns the process-wide schema, constructed on first use and
// never mutated afterwards.
func Default() *Schema {
	return defaultSchema()
}

// RegisterField adds a field definition to the schema. Registering a name
// that already exists with a different cardinality fails with
// ErrSchemaConflict; re-registering an identical definition is a no-op.
func (s *Schema) RegisterField(f Field) error {
	if f.RawKey == "" || f.EmailName == "" {
		return fmt.Errorf("%w: field must declare both a raw key and an email name", ErrSchemaConflict)
	}
	emailKey := strings.ToLower(f.EmailName)

	if existing, ok := s.byEmail[emailKey]; ok {
		if existing.Cardinality != f.Cardinality {
			return fmt.Errorf("%w: %q already registered as %s, cannot re-register as %s",
				ErrSchemaConflict, f.EmailName, existing.Cardinality, f.Cardinality)
		}
		return nil
	}
	if existing, ok := s.byRaw[f.RawKey]; ok {
		if existing.Cardinality != f.Cardinality {
			return fmt.Errorf("%w: raw key %q already registered as %s, cannot re-register as %s",
				ErrSchemaConflict, f.RawKey, existing.Cardinality, f.Cardinality)
		}
		return nil
	}

	def := f
	s.byEmail[emailKey] = &def
	s.byRaw[f.RawKey] = &def
	s.fields = append(s.fields, &def)
	return nil
}

// FieldByEmailName looks up a definition by wire header name,
// case-insensitively.
func (s *Schema) FieldByEmailName(name string) (*Field, bool) {
	f, ok := s.byEmail[strings.ToLower(name)]
	return f, ok
}

// FieldByRawKey looks up a definition by raw mapping key.
func (s *Schema) FieldByRawKey(key string) (*Field, bool) {
	f, ok := s.byRaw[key]
	return f, ok
}

// Fields returns the definitions in registration order.
func (s *Schema) Fields() []*Field {
	out := make([]*Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Validate checks every key of raw against the schema: the key must have a
// definition, the value must match the field's cardinality, and the field's
// validator must pass. Required fields must be present. Validation never
// mutates raw, so re-validating an already-validated mapping succeeds.
func (s *Schema) Validate(raw RawMetadata) error {
	for key, value := range raw {
		f, ok := s.byRaw[key]
		if !ok {
			return fieldErrorf(key, ErrUnknownField, "no definition in schema")
		}
		if err := checkShape(f, value); err != nil {
			return err
		}
		if f.Validate != nil {
			if err := f.Validate(key, value); err != nil {
				return err
			}
		}
	}
	for _, f := range s.fields {
		if f.Required {
			if _, ok := raw[f.RawKey]; !ok {
				return fieldErrorf(f.RawKey, nil, "required field missing")
			}
		}
	}
	return nil
}

// checkShape verifies the value's dynamic type matches the declared
// cardinality. A []string under a Single field means the header repeated.
func checkShape(f *Field, value interface{}) error {
	switch f.Cardinality {
	case Single:
		if _, ok := value.(string); !ok {
			return fieldErrorf(f.RawKey, nil, "multiple values for single-value field")
		}
	case List:
		if _, ok := value.([]string); !ok {
			return fieldErrorf(f.RawKey, nil, "expected a list of values")
		}
	case Pairs:
		if _, ok := value.(map[string]string); !ok {
			return fieldErrorf(f.RawKey, nil, "expected label/value pairs")
		}
	}
	return nil
}

// knownMetadataVersions are the published core-metadata revisions.
var knownMetadataVersions = map[string]bool{
	"1.0": true, "1.1": true, "1.2": true,
	"2.1": true, "2.2": true, "2.3": true, "2.4": true,
}

// namePattern is the normalized project-name rule: alphanumeric with
// interior dots, underscores, and hyphens.
var namePattern = regexp.MustCompile(`(?i)^([A-Z0-9]|[A-Z0-9][A-Z0-9._-]*[A-Z0-9])$`)

func validateName(field string, value interface{}) error {
	v, _ := value.(string)
	if !namePattern.MatchString(v) {
		return fieldErrorf(field, nil, "%q is not a valid project name", v)
	}
	return nil
}

func validateVersion(field string, value interface{}) error {
	v, _ := value.(string)
	if strings.TrimSpace(v) == "" {
		return fieldErrorf(field, nil, "version must not be empty")
	}
	if strings.ContainsAny(v, " \t") {
		return fieldErrorf(field, nil, "version %q must not contain whitespace", v)
	}
	return nil
}

func validateMetadataVersion(field string, value interface{}) error {
	v, _ := value.(string)
	if !knownMetadataVersions[v] {
		return fieldErrorf(field, nil, "%q is not a known metadata version", v)
	}
	return nil
}

// nonEmptyValues rejects blank entries in list and pair values.
func nonEmptyValues(field string, value interface{}) error {
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return fieldErrorf(field, nil, "value must not be empty")
		}
	case []string:
		for i, item := range v {
			if strings.TrimSpace(item) == "" {
				return fieldErrorf(field, nil, "entry %d must not be empty", i)
			}
		}
	case map[string]string:
		for label := range v {
			if strings.TrimSpace(label) == "" {
				return fieldErrorf(field, nil, "pair label must not be empty")
			}
		}
	}
	return nil
}

// baselineFields is the core-metadata seed table. Adding or removing a
// field is a one-line change here; the parser never needs to know.
func baselineFields() []Field {
	return []Field{
		{RawKey: "metadata_version", EmailName: "Metadata-Version", Cardinality: Single, Required: true, Added: "1.0", Validate: validateMetadataVersion},
		{RawKey: "name", EmailName: "Name", Cardinality: Single, Required: true, Added: "1.0", Validate: validateName},
		{RawKey: "version", EmailName: "Version", Cardinality: Single, Required: true, Added: "1.0", Validate: validateVersion},
		{RawKey: "summary", EmailName: "Summary", Cardinality: Single, Added: "1.0"},
		{RawKey: "description", EmailName: "Description", Cardinality: Single, Added: "1.0"},
		{RawKey: "description_content_type", EmailName: "Description-Content-Type", Cardinality: Single, Added: "2.1"},
		{RawKey: "keywords", EmailName: "Keywords", Cardinality: List, Added: "1.0", CommaSeparated: true},
		{RawKey: "author", EmailName: "Author", Cardinality: Single, Added: "1.0"},
		{RawKey: "author_email", EmailName: "Author-email", Cardinality: Single, Added: "1.0"},
		{RawKey: "maintainer", EmailName: "Maintainer", Cardinality: Single, Added: "1.2"},
		{RawKey: "maintainer_email", EmailName: "Maintainer-email", Cardinality: Single, Added: "1.2"},
		{RawKey: "license", EmailName: "License", Cardinality: Single, Added: "1.0"},
		{RawKey: "license_expression", EmailName: "License-Expression", Cardinality: Single, Added: "2.4"},
		{RawKey: "license_files", EmailName: "License-File", Cardinality: List, Added: "2.4", Validate: nonEmptyValues},
		{RawKey: "home_page", EmailName: "Home-page", Cardinality: Single, Added: "1.0"},
		{RawKey: "download_url", EmailName: "Download-URL", Cardinality: Single, Added: "1.1"},
		{RawKey: "platforms", EmailName: "Platform", Cardinality: List, Added: "1.0", Validate: nonEmptyValues},
		{RawKey: "supported_platforms", EmailName: "Supported-Platform", Cardinality: List, Added: "1.1", Validate: nonEmptyValues},
		{RawKey: "classifiers", EmailName: "Classifier", Cardinality: List, Added: "1.1", Validate: nonEmptyValues},
		{RawKey: "requires_dist", EmailName: "Requires-Dist", Cardinality: List, Added: "1.2", Validate: nonEmptyValues},
		{RawKey: "requires_python", EmailName: "Requires-Python", Cardinality: Single, Added: "1.2"},
		{RawKey: "requires_external", EmailName: "Requires-External", Cardinality: List, Added: "1.2", Validate: nonEmptyValues},
		{RawKey: "provides_dist", EmailName: "Provides-Dist", Cardinality: List, Added: "1.2", Validate: nonEmptyValues},
		{RawKey: "obsoletes_dist", EmailName: "Obsoletes-Dist", Cardinality: List, Added: "1.2", Validate: nonEmptyValues},
		{RawKey: "provides_extra", EmailName: "Provides-Extra", Cardinality: List, Added: "2.1", Validate: nonEmptyValues},
		{RawKey: "project_urls", EmailName: "Project-URL", Cardinality: Pairs, Added: "1.2", Validate: nonEmptyValues},
		{RawKey: "dynamic", EmailName: "Dynamic", Cardinality: List, Added: "2.2", Validate: nonEmptyValues},
		// Pre-1.2 dependency fields, still seen in old artifacts.
		{RawKey: "requires", EmailName: "Requires", Cardinality: List, Added: "1.1", Validate: nonEmptyValues},
		{RawKey: "provides", EmailName: "Provides", Cardinality: List, Added: "1.1", Validate: nonEmptyValues},
		{RawKey: "obsoletes", EmailName: "Obsoletes", Cardinality: List, Added: "1.1", Validate: nonEmptyValues},
	}
}
