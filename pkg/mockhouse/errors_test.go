package mockhouse_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, mockhouse.ExitSuccess},
		{"general error", errors.New("something went wrong"), mockhouse.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), mockhouse.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), mockhouse.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), mockhouse.ExitUsageError},
		{"requires at least", errors.New("requires at least 1 arg(s), only received 0"), mockhouse.ExitUsageError},
		{"invalid config", mockhouse.ErrInvalidConfig, mockhouse.ExitConfigError},
		{"no metadata entry", mockhouse.ErrNoMetadataEntry, mockhouse.ExitNoMetadata},
		{"no metadata content", mockhouse.ErrNoMetadata, mockhouse.ExitNoMetadata},
		{"archive read", mockhouse.ErrArchiveRead, mockhouse.ExitArchiveError},
		{"invalid metadata", mockhouse.ErrInvalidMetadata, mockhouse.ExitInvalidMetadata},
		{"verify failed", mockhouse.ErrVerifyFailed, mockhouse.ExitVerifyFailed},
		{"wrapped sentinel", fmt.Errorf("demo.whl: %w", mockhouse.ErrArchiveRead), mockhouse.ExitArchiveError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mockhouse.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestErrNoMetadataEntry_IsNotExist(t *testing.T) {
	if !errors.Is(mockhouse.ErrNoMetadataEntry, fs.ErrNotExist) {
		t.Error("Expected ErrNoMetadataEntry to satisfy errors.Is(err, fs.ErrNotExist)")
	}
}
