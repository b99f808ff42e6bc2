package metadata

import (
	"errors"
	"fmt"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// ErrNoMetadata is returned when Parse is given nil content, meaning no
// metadata could be located at all. This is distinct from empty content,
// which parses to an empty mapping and fails validation instead.
var ErrNoMetadata = mockhouse.ErrNoMetadata

// ErrUnknownField is returned (wrapped in a FieldError) when a parsed field
// has no definition in the schema.
var ErrUnknownField = errors.New("unknown metadata field")

// ErrSchemaConflict is returned when a field is registered under a name that
// already carries an incompatible definition.
var ErrSchemaConflict = errors.New("conflicting field registration")

// ParseError reports malformed header syntax in a metadata block.
// Line is 0 when the underlying reader gave no position information.
type ParseError struct {
	Line int    // 1-based line number, 0 if unknown
	Msg  string // primary message
	Err  error  // underlying parser error, may be nil
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("metadata parse error (line %d): %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("metadata parse error: %s", e.Msg)
}

// Unwrap exposes both the underlying parser error and the invalid-metadata
// classification for errors.Is checks.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{mockhouse.ErrInvalidMetadata, e.Err}
	}
	return []error{mockhouse.ErrInvalidMetadata}
}

// FieldError reports a schema violation for a single named field: an
// unknown field, a cardinality mismatch, or a failed validation rule.
type FieldError struct {
	Field string // raw key of the offending field
	Rule  string // the violated rule, human readable
	Err   error  // sentinel classification (e.g. ErrUnknownField), may be nil
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("metadata field %q: %s", e.Field, e.Rule)
}

// Unwrap exposes the sentinel classification and the invalid-metadata kind.
func (e *FieldError) Unwrap() []error {
	if e.Err != nil {
		return []error{mockhouse.ErrInvalidMetadata, e.Err}
	}
	return []error{mockhouse.ErrInvalidMetadata}
}

// fieldErrorf constructs a FieldError with a formatted rule description.
func fieldErrorf(field string, sentinel error, format string, args ...interface{}) *FieldError {
	return &FieldError{
		Field: field,
		Rule:  fmt.Sprintf(format, args...),
		Err:   sentinel,
	}
}
