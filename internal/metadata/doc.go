// Package metadata implements the core-metadata record model for wheel
// distributions: a declarative field schema, an email-header parser, and an
// immutable parsed record exposing both raw and validated views.
//
// # Metadata Format
//
// Wheel metadata is an RFC 822 style header block:
//
//	Metadata-Version: 2.1
//	Name: dummy-project
//	Version: 0.0.1.dev1
//	Classifier: Programming Language :: Python :: 3
//	Classifier: Operating System :: OS Independent
//	Variant: cuda12
//	Variant: cpu
//
//	Long description follows the blank line.
//
// Header names repeat for list-cardinality fields, continuation lines are
// folded, and the free-text body after the blank line feeds the description
// field.
//
// # Schema
//
// The Schema is an explicit, owned field registry. Each field declares its
// raw key (the key in the parsed mapping), its wire header name, a
// cardinality (single value, repeatable list, or label/value pairs), whether
// it is required, and an optional validator. Adding or removing a field is a
// one-line change to the seed table; the parser never changes.
//
// The default schema extends the baseline core-metadata field set with one
// optional repeatable field, "Variant" (raw key "variants"), registered the
// same way as every baseline field.
//
// # Raw / Structured Duality
//
// Parsing yields a RawMetadata mapping (string, []string, or
// map[string]string values per cardinality). Validation checks every key
// against the schema and produces a Record: typed accessors over the same
// data, immutable after construction. Unknown fields are rejected, never
// silently dropped.
//
// # Error Taxonomy
//
//	ErrNoMetadata      - nil content supplied: nothing was located to parse
//	*ParseError        - malformed header syntax
//	*FieldError        - a field violated its schema rule
//	ErrUnknownField    - a field has no schema definition (via FieldError)
//	ErrSchemaConflict  - conflicting field registration
//
// "Nothing to parse" is deliberately distinguishable from "found but
// broken": callers check errors.Is(err, ErrNoMetadata) for the former.
//
// # Concurrency
//
// A Schema is read-only after construction and safe for concurrent reads.
// Records are per-parse instances with no shared state; independent parses
// need no coordination.
package metadata
