// Package wheel reads distribution metadata out of wheel archives.
//
// A wheel is a zip archive whose .dist-info directory holds a METADATA
// entry (or the older PKG-INFO name) with an email-header-style metadata
// block, and a RECORD manifest listing every entry with its sha256 digest.
//
// # Extraction Pipeline
//
// Extraction is a linear pipeline with no retries and no state between
// calls:
//
//	Located -> Read -> Parsed -> Validated
//
// Each stage fails with its own distinguishable error kind so callers can
// tell "nothing to parse" from "found but broken":
//
//	ErrNoMetadataEntry   - no METADATA/PKG-INFO entry (wraps fs.ErrNotExist)
//	*ReadError           - archive or entry unreadable/corrupt
//	metadata.ErrNoMetadata, *metadata.ParseError, *metadata.FieldError -
//	                       propagated unchanged from parsing/validation
//
// # Entry Precedence
//
// Archive listing order is not guaranteed sorted, so which entry wins when
// several match is an explicit policy here: an entry whose basename is
// exactly METADATA always beats a PKG-INFO entry, and within the same name
// the first entry in listing order wins.
//
// The archive handle and the matched entry's stream are both released on
// every exit path before a call returns. Calls share no mutable state, so
// concurrent extraction from different archives needs no coordination.
//
// # Usage
//
//	raw, err := wheel.ExtractMetadata("dist/demo-1.0-py3-none-any.whl")
//	if errors.Is(err, mockhouse.ErrNoMetadataEntry) {
//	    // wheel carries no metadata entry at all
//	}
package wheel
