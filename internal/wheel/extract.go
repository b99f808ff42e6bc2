package wheel

import (
	"errors"
	"io/fs"

	"github.com/klauspost/compress/zip"

	"github.com/mockhouse/mockhouse/internal/metadata"
)

// Extract runs the full pipeline against the wheel at path and returns the
// parsed, validated record. The archive handle is released before the call
// returns, on success and on every failure.
func Extract(path string) (*metadata.Record, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, &ReadError{Archive: path, Err: err}
	}
	defer zr.Close()

	entry, err := LocateMetadataEntry(&zr.Reader)
	if err != nil {
		return nil, err
	}

	content, err := ReadEntry(path, entry)
	if err != nil {
		return nil, err
	}

	return metadata.ParseAndValidate(content, metadata.Default())
}

// ExtractMetadata runs the pipeline and returns the record's raw mapping,
// the convenience form for callers that only want to serialize the result.
// Errors from every stage propagate unchanged.
func ExtractMetadata(path string) (metadata.RawMetadata, error) {
	rec, err := Extract(path)
	if err != nil {
		return nil, err
	}
	return rec.Raw(), nil
}
