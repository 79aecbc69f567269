package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// ContentHash computes the hex-encoded SHA-256 digest of data. It is the
// hash scheme used for content entries in catalog descriptors and for
// verifying downloaded bytes.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ContentHashReader computes the hex-encoded SHA-256 digest of everything
// read from r. Used to verify cached content files without loading them into
// memory.
func ContentHashReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// TransportHash computes an HMAC-SHA256 signature over payload using key and
// returns it hex-encoded. An empty key yields an empty hash, which disables
// integrity checking.
func TransportHash(payload []byte, key string) string {
	if key == "" {
		return ""
	}
	h := hmac.New(sha256.New, []byte(key))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}
