package mockhouse

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := wheel.ExtractMetadata(path)
//	if errors.Is(err, mockhouse.ErrNoMetadata) {
//	    // Nothing to parse - distinct from "found but broken"
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoMetadata indicates no metadata content was supplied at parse time.
	ErrNoMetadata = errors.New("no metadata content")

	// ErrNoMetadataEntry indicates the archive contains no METADATA or
	// PKG-INFO entry. It wraps fs.ErrNotExist so errors.Is(err,
	// fs.ErrNotExist) also holds.
	ErrNoMetadataEntry = fmt.Errorf("%w: no metadata entry in archive", fs.ErrNotExist)

	// ErrArchiveRead indicates the archive is unreadable or corrupt.
	ErrArchiveRead = errors.New("archive read failed")

	// ErrInvalidMetadata indicates metadata was found but is malformed or
	// fails schema validation.
	ErrInvalidMetadata = errors.New("invalid metadata")

	// ErrVerifyFailed indicates RECORD checksum verification found mismatches.
	ErrVerifyFailed = errors.New("verification failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrNoMetadataEntry), errors.Is(err, fs.ErrNotExist):
		return ExitNoMetadata
	case errors.Is(err, ErrNoMetadata):
		return ExitNoMetadata
	case errors.Is(err, ErrArchiveRead):
		return ExitArchiveError
	case errors.Is(err, ErrInvalidMetadata):
		return ExitInvalidMetadata
	case errors.Is(err, ErrVerifyFailed):
		return ExitVerifyFailed
	}

	// Cobra reports usage mistakes as plain errors; classify by message.
	errStr := err.Error()
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts ",
		"requires at least",
		"required flag",
		"invalid argument",
	} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
