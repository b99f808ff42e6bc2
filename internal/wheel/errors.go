package wheel

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// ErrNoMetadataEntry is returned when the archive contains no METADATA or
// PKG-INFO entry. errors.Is(err, fs.ErrNotExist) also holds.
var ErrNoMetadataEntry = mockhouse.ErrNoMetadataEntry

// ErrNoRecordEntry is returned when verification finds no RECORD manifest.
var ErrNoRecordEntry = fmt.Errorf("%w: no RECORD entry in archive", fs.ErrNotExist)

// ErrBadFilename is returned for filenames that do not follow the
// name-version(-build)-python-abi-platform.whl convention.
var ErrBadFilename = errors.New("not a valid wheel filename")

// ReadError reports an unreadable or corrupt archive or entry.
type ReadError struct {
	Archive string // path to the wheel file
	Entry   string // entry name, empty for archive-level failures
	Err     error  // underlying error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("reading %s from %s: %v", e.Entry, e.Archive, e.Err)
	}
	return fmt.Sprintf("reading %s: %v", e.Archive, e.Err)
}

// Unwrap exposes the archive-read classification and the underlying error
// for errors.Is checks.
func (e *ReadError) Unwrap() []error {
	if e.Err != nil {
		return []error{mockhouse.ErrArchiveRead, e.Err}
	}
	return []error{mockhouse.ErrArchiveRead}
}
