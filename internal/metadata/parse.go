package metadata

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"net/textproto"
	"strings"
)

// Parse decodes an email-header-style metadata block into a raw mapping
// shaped by the schema's cardinalities. It does not validate: unknown
// headers are carried through under their lowercased name and a repeated
// single-value header is carried as a list, both left for Validate to
// reject. Nil content means no metadata was located and fails immediately
// with ErrNoMetadata; empty content is parsed normally.
func Parse(content []byte, s *Schema) (RawMetadata, error) {
	if content == nil {
		return nil, ErrNoMetadata
	}

	tp := textproto.NewReader(bufio.NewReader(bytes.NewReader(content)))
	header, err := tp.ReadMIMEHeader()
	// io.EOF means the block ended without a blank-line separator, which is
	// how most METADATA files without a body terminate.
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &ParseError{Msg: "malformed header block", Err: err}
	}
	hasBody := err == nil

	raw := make(RawMetadata, len(header))
	for name, values := range header {
		if perr := assignField(raw, s, name, values); perr != nil {
			return nil, perr
		}
	}

	if hasBody {
		body, rerr := io.ReadAll(tp.R)
		if rerr != nil {
			return nil, &ParseError{Msg: "reading description body", Err: rerr}
		}
		text := strings.TrimSuffix(string(body), "\n")
		if strings.TrimSpace(text) != "" {
			if _, ok := raw["description"]; ok {
				return nil, fieldErrorf("description", nil,
					"supplied both as a header and as a body after the blank line")
			}
			raw["description"] = text
		}
	}

	return raw, nil
}

// assignField shapes one header's values into the raw mapping according to
// the field's cardinality.
func assignField(raw RawMetadata, s *Schema, name string, values []string) error {
	f, known := s.FieldByEmailName(name)
	if !known {
		// Carried through for Validate to reject by name.
		key := strings.ToLower(name)
		if len(values) == 1 {
			raw[key] = values[0]
		} else {
			raw[key] = append([]string(nil), values...)
		}
		return nil
	}

	switch f.Cardinality {
	case Single:
		if len(values) == 1 {
			raw[f.RawKey] = values[0]
		} else {
			// Shape mismatch, flagged during validation.
			raw[f.RawKey] = append([]string(nil), values...)
		}
	case List:
		var list []string
		if f.CommaSeparated {
			list = splitCommaSeparated(values)
		} else {
			list = append([]string(nil), values...)
		}
		// A header whose entries all trim away yields no values at all;
		// the field stays absent rather than present-but-empty.
		if len(list) == 0 {
			return nil
		}
		raw[f.RawKey] = list
	case Pairs:
		pairs, err := parsePairs(f.RawKey, values)
		if err != nil {
			return err
		}
		raw[f.RawKey] = pairs
	}
	return nil
}

// splitCommaSeparated flattens comma-separated header values into one list,
// trimming whitespace around each entry.
func splitCommaSeparated(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// parsePairs decodes "Label, value" header entries into a mapping.
// A missing separator or a duplicate label is a field violation.
func parsePairs(field string, values []string) (map[string]string, error) {
	pairs := make(map[string]string, len(values))
	for _, v := range values {
		label, value, found := strings.Cut(v, ",")
		if !found {
			return nil, fieldErrorf(field, nil, "malformed entry %q, expected \"Label, value\"", v)
		}
		label = strings.TrimSpace(label)
		value = strings.TrimSpace(value)
		if _, dup := pairs[label]; dup {
			return nil, fieldErrorf(field, nil, "duplicate label %q", label)
		}
		pairs[label] = value
	}
	return pairs, nil
}

// ParseAndValidate combines parsing and schema validation in one call,
// returning the immutable record. This is the pipeline's entry point.
func ParseAndValidate(content []byte, s *Schema) (*Record, error) {
	raw, err := Parse(content, s)
	if err != nil {
		return nil, err
	}
	return NewRecord(s, raw)
}
