package wheel

import (
	"fmt"
	"io"
	"path"

	"github.com/klauspost/compress/zip"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// LocateMetadataEntry finds the metadata entry in an archive's listing.
// An entry matches when its basename is METADATA or PKG-INFO. METADATA
// always beats PKG-INFO regardless of listing position; within the same
// name the first entry in listing order wins. Returns ErrNoMetadataEntry
// when nothing matches.
func LocateMetadataEntry(r *zip.Reader) (*zip.File, error) {
	var legacy *zip.File
	for _, f := range r.File {
		switch path.Base(f.Name) {
		case mockhouse.MetadataEntryName:
			return f, nil
		case mockhouse.LegacyMetadataEntryName:
			if legacy == nil {
				legacy = f
			}
		}
	}
	if legacy != nil {
		return legacy, nil
	}
	return nil, ErrNoMetadataEntry
}

// ReadEntry opens the matched entry and reads its full contents, closing
// the entry stream on every exit path. Fails with a ReadError if the entry
// cannot be opened, is truncated/corrupt, or exceeds MaxMetadataSize.
func ReadEntry(archive string, f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, &ReadError{Archive: archive, Entry: f.Name, Err: err}
	}
	defer rc.Close()

	content, err := io.ReadAll(io.LimitReader(rc, mockhouse.MaxMetadataSize+1))
	if err != nil {
		return nil, &ReadError{Archive: archive, Entry: f.Name, Err: err}
	}
	if len(content) > mockhouse.MaxMetadataSize {
		return nil, &ReadError{
			Archive: archive,
			Entry:   f.Name,
			Err:     fmt.Errorf("entry exceeds %d bytes", mockhouse.MaxMetadataSize),
		}
	}
	return content, nil
}
