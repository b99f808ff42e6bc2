// Package checksum computes content digests in the wheel RECORD format.
//
// A wheel's RECORD manifest lists every archive entry with a digest of the
// form "alg=value", where value is the unpadded URL-safe base64 encoding of
// the hash. sha256 is the only algorithm producers emit in practice and the
// only one this package computes; ParseDigest still reports the algorithm
// so callers can reject manifests hashed with anything else.
//
// SHA256 is a zero-size type with value semantics and is safe for
// concurrent use by multiple goroutines.
package checksum
