package wheel

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// Filename holds the components of a wheel filename:
//
//	{distribution}-{version}(-{build})?-{python}-{abi}-{platform}.whl
//
// The distribution segment is escaped per the wheel convention, so segments
// split unambiguously on hyphens.
type Filename struct {
	Distribution string
	Version      string
	Build        string // optional, empty when absent; starts with a digit
	PythonTag    string
	ABITag       string
	PlatformTag  string
}

// Matches reports whether the filename's distribution and version segments
// identify the given project name and version. Distributions are compared
// under name normalization, so the filename's escaped form (dummy_project)
// matches the metadata's canonical form (dummy-project).
func (f Filename) Matches(name, version string) bool {
	return normalizeName(f.Distribution) == normalizeName(name) && f.Version == version
}

var nameSeparators = regexp.MustCompile(`[-_.]+`)

// normalizeName folds a distribution name to its comparison form: runs of
// hyphens, underscores, and dots collapse to a single hyphen, lowercased.
func normalizeName(s string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(s, "-"))
}

// ParseFilename splits a wheel filename into its components. The name may
// carry a directory prefix, which is ignored. Fails with ErrBadFilename on
// a wrong extension, a wrong segment count, an empty segment, or a build
// tag that does not start with a digit.
func ParseFilename(name string) (Filename, error) {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, mockhouse.WheelExtension) {
		return Filename{}, fmt.Errorf("%w: %q does not end in %s", ErrBadFilename, base, mockhouse.WheelExtension)
	}
	stem := strings.TrimSuffix(base, mockhouse.WheelExtension)

	parts := strings.Split(stem, "-")
	for _, p := range parts {
		if p == "" {
			return Filename{}, fmt.Errorf("%w: %q has an empty segment", ErrBadFilename, base)
		}
	}

	switch len(parts) {
	case 5:
		return Filename{
			Distribution: parts[0],
			Version:      parts[1],
			PythonTag:    parts[2],
			ABITag:       parts[3],
			PlatformTag:  parts[4],
		}, nil
	case 6:
		if !unicode.IsDigit(rune(parts[2][0])) {
			return Filename{}, fmt.Errorf("%w: build tag %q must start with a digit", ErrBadFilename, parts[2])
		}
		return Filename{
			Distribution: parts[0],
			Version:      parts[1],
			Build:        parts[2],
			PythonTag:    parts[3],
			ABITag:       parts[4],
			PlatformTag:  parts[5],
		}, nil
	default:
		return Filename{}, fmt.Errorf("%w: %q has %d segments, expected 5 or 6", ErrBadFilename, base, len(parts))
	}
}
