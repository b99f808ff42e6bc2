package wheel

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/mockhouse/mockhouse/internal/checksum"
	"github.com/mockhouse/mockhouse/pkg/mockhouse"
)

// Mismatch is one discrepancy between a wheel's RECORD manifest and its
// actual contents.
type Mismatch struct {
	Path   string
	Reason string
}

// recordRow is one parsed RECORD line: path, digest, size. The manifest's
// own row carries an empty digest and size.
type recordRow struct {
	digest string
	size   int64 // -1 when unrecorded
}

// VerifyRecord checks every archive entry against the wheel's RECORD
// manifest: recomputed sha256 digests, recorded sizes, and presence in both
// directions. A non-empty mismatch list with a nil error means the archive
// was readable but inconsistent; errors are reserved for unreadable or
// unparseable input.
func VerifyRecord(archivePath string) ([]Mismatch, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, &ReadError{Archive: archivePath, Err: err}
	}
	defer zr.Close()

	recordEntry := locateRecordEntry(&zr.Reader)
	if recordEntry == nil {
		return nil, ErrNoRecordEntry
	}

	content, err := ReadEntry(archivePath, recordEntry)
	if err != nil {
		return nil, err
	}

	rows, err := parseRecord(archivePath, recordEntry.Name, content)
	if err != nil {
		return nil, err
	}

	calc := checksum.New()
	var mismatches []Mismatch
	seen := make(map[string]bool, len(rows))

	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue // directory entry
		}
		if isRecordSignature(f.Name) {
			continue // RECORD.jws / RECORD.p7s are never listed
		}
		seen[f.Name] = true

		row, listed := rows[f.Name]
		if !listed {
			mismatches = append(mismatches, Mismatch{Path: f.Name, Reason: "not listed in RECORD"})
			continue
		}
		if row.digest == "" {
			continue // the manifest does not hash itself
		}

		got, size, derr := digestEntry(calc, f)
		if derr != nil {
			return nil, &ReadError{Archive: archivePath, Entry: f.Name, Err: derr}
		}
		if got != row.digest {
			mismatches = append(mismatches, Mismatch{
				Path:   f.Name,
				Reason: fmt.Sprintf("digest mismatch: recorded %s, computed %s", row.digest, got),
			})
		}
		if row.size >= 0 && row.size != size {
			mismatches = append(mismatches, Mismatch{
				Path:   f.Name,
				Reason: fmt.Sprintf("size mismatch: recorded %d, actual %d", row.size, size),
			})
		}
	}

	for p := range rows {
		if !seen[p] {
			mismatches = append(mismatches, Mismatch{Path: p, Reason: "listed in RECORD but missing from archive"})
		}
	}

	return mismatches, nil
}

// digestEntry streams one archive entry through the calculator without
// buffering. Payload entries can be arbitrarily large, so the metadata
// read cap does not apply here.
func digestEntry(calc checksum.Calculator, f *zip.File) (string, int64, error) {
	rc, err := f.Open()
	if err != nil {
		return "", 0, err
	}
	defer rc.Close()
	return calc.DigestReader(rc)
}

// locateRecordEntry finds the RECORD manifest, first in listing order.
func locateRecordEntry(r *zip.Reader) *zip.File {
	for _, f := range r.File {
		if path.Base(f.Name) == mockhouse.RecordEntryName {
			return f
		}
	}
	return nil
}

// isRecordSignature reports whether name is a RECORD signature companion.
func isRecordSignature(name string) bool {
	base := path.Base(name)
	return base == mockhouse.RecordEntryName+".jws" || base == mockhouse.RecordEntryName+".p7s"
}

// parseRecord decodes the CSV manifest into a path-keyed map.
func parseRecord(archive, entry string, content []byte) (map[string]recordRow, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = 3

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ReadError{Archive: archive, Entry: entry, Err: err}
	}

	rows := make(map[string]recordRow, len(records))
	for _, rec := range records {
		p := rec[0]
		digest := rec[1]

		if digest != "" {
			alg, _, derr := checksum.ParseDigest(digest)
			if derr != nil {
				return nil, &ReadError{Archive: archive, Entry: entry, Err: derr}
			}
			if alg != checksum.Algorithm {
				return nil, &ReadError{
					Archive: archive,
					Entry:   entry,
					Err:     fmt.Errorf("unsupported digest algorithm %q for %s", alg, p),
				}
			}
		}

		size := int64(-1)
		if rec[2] != "" {
			size, err = strconv.ParseInt(rec[2], 10, 64)
			if err != nil {
				return nil, &ReadError{Archive: archive, Entry: entry, Err: fmt.Errorf("bad size for %s: %w", p, err)}
			}
		}

		rows[p] = recordRow{digest: digest, size: size}
	}
	return rows, nil
}
