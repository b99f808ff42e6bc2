package metadata

// RawMetadata is the unvalidated field-key-to-value view of a parsed
// metadata block. Values are string, []string, or map[string]string
// according to the field's declared cardinality. Repeated list headers keep
// their occurrence order.
type RawMetadata map[string]interface{}

// Clone returns a shallow copy of the mapping with list and pair values
// duplicated, so callers cannot mutate a record through its raw view.
func (r RawMetadata) Clone() RawMetadata {
	out := make(RawMetadata, len(r))
	for k, v := range r {
		switch vv := v.(type) {
		case []string:
			cp := make([]string, len(vv))
			copy(cp, vv)
			out[k] = cp
		case map[string]string:
			cp := make(map[string]string, len(vv))
			for label, val := range vv {
				cp[label] = val
			}
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}

// Record is a parsed, schema-validated metadata block. Immutable after
// construction; each parse call produces an independent instance owned
// solely by the caller.
type Record struct {
	raw RawMetadata
}

// NewRecord validates raw against the schema and wraps it in a Record.
// The mapping is cloned, so later mutation of raw does not affect the
// record.
func NewRecord(s *Schema, raw RawMetadata) (*Record, error) {
	if err := s.Validate(raw); err != nil {
		return nil, err
	}
	return &Record{raw: raw.Clone()}, nil
}

// Raw returns the raw mapping view, cloned so callers cannot mutate the
// record. Suitable for direct serialization.
func (r *Record) Raw() RawMetadata {
	return r.raw.Clone()
}

// stringField returns a Single field's value, empty when absent.
func (r *Record) stringField(key string) string {
	v, _ := r.raw[key].(string)
	return v
}

// listField returns a List field's values, nil when the header never
// appeared. Present-but-empty does not occur: blank values fail validation.
func (r *Record) listField(key string) []string {
	v, ok := r.raw[key].([]string)
	if !ok {
		return nil
	}
	cp := make([]string, len(v))
	copy(cp, v)
	return cp
}

// pairsField returns a Pairs field's mapping, nil when absent.
func (r *Record) pairsField(key string) map[string]string {
	v, ok := r.raw[key].(map[string]string)
	if !ok {
		return nil
	}
	cp := make(map[string]string, len(v))
	for label, val := range v {
		cp[label] = val
	}
	return cp
}

// MetadataVersion returns the declared core-metadata revision.
func (r *Record) MetadataVersion() string { return r.stringField("metadata_version") }

// Name returns the distribution name.
func (r *Record) Name() string { return r.stringField("name") }

// Version returns the distribution version.
func (r *Record) Version() string { return r.stringField("version") }

// Summary returns the one-line summary, empty when absent.
func (r *Record) Summary() string { return r.stringField("summary") }

// Description returns the long description, empty when absent.
func (r *Record) Description() string { return r.stringField("description") }

// Keywords returns the keyword list, nil when absent.
func (r *Record) Keywords() []string { return r.listField("keywords") }

// Classifiers returns the trove classifiers, nil when absent.
func (r *Record) Classifiers() []string { return r.listField("classifiers") }

// RequiresDist returns the dependency specifiers, nil when absent.
func (r *Record) RequiresDist() []string { return r.listField("requires_dist") }

// RequiresPython returns the interpreter constraint, empty when absent.
func (r *Record) RequiresPython() string { return r.stringField("requires_python") }

// ProjectURLs returns the labeled URL pairs, nil when absent.
func (r *Record) ProjectURLs() map[string]string { return r.pairsField("project_urls") }

// Variants returns the variant labels in header order. Nil means the
// Variant header was never supplied, which is distinct from an empty list.
func (r *Record) Variants() []string { return r.listField("variants") }
