package checksum

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Algorithm is the digest algorithm RECORD manifests are hashed with.
const Algorithm = "sha256"

// Calculator is an interface for computing entry digests.
// This abstraction allows tests to substitute a fixed calculator.
type Calculator interface {
	// RecordDigest computes the digest of an in-memory buffer in RECORD
	// manifest form: "sha256=" followed by unpadded URL-safe base64.
	RecordDigest(content []byte) string

	// DigestReader consumes r and returns its digest in RECORD manifest
	// form along with the number of bytes read. Content is streamed, so
	// arbitrarily large entries never need buffering.
	DigestReader(r io.Reader) (digest string, size int64, err error)
}

// SHA256 implements Calculator using SHA-256.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
// Returns by value to avoid heap allocation (SHA256 is a zero-size type).
func New() SHA256 {
	return SHA256{}
}

// RecordDigest computes the digest in RECORD manifest form.
func (c SHA256) RecordDigest(content []byte) string {
	sum := sha256.Sum256(content)
	return formatDigest(sum[:])
}

// DigestReader streams r through the hash and returns the digest in RECORD
// manifest form plus the number of bytes consumed.
func (c SHA256) DigestReader(r io.Reader) (string, int64, error) {
	h := sha256.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return "", n, err
	}
	return formatDigest(h.Sum(nil)), n, nil
}

// formatDigest renders a raw sha256 sum in RECORD digest form.
func formatDigest(sum []byte) string {
	return Algorithm + "=" + base64.RawURLEncoding.EncodeToString(sum)
}

// ParseDigest splits a RECORD digest string into its algorithm and value.
// An empty string is legal in RECORD (the manifest does not hash itself)
// and returns empty parts with no error.
func ParseDigest(s string) (alg, value string, err error) {
	if s == "" {
		return "", "", nil
	}
	alg, value, found := strings.Cut(s, "=")
	if !found || alg == "" || value == "" {
		return "", "", fmt.Errorf("malformed digest %q, expected \"alg=value\"", s)
	}
	return alg, value, nil
}
