package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// ContentHasher accumulates bytes streamed to disk and yields the
// hex-encoded SHA-256 digest used as the content-addressed filename.
// It implements io.Writer so it can sit in an io.MultiWriter next to
// the destination file.
type ContentHasher struct {
	h hash.Hash
}

func NewContentHasher() *ContentHasher {
	return &ContentHasher{h: sha256.New()}
}

func (c *ContentHasher) Write(p []byte) (int, error) {
	return c.h.Write(p)
}

// Sum returns the hex-encoded digest of everything written so far.
func (c *ContentHasher) Sum() string {
	return hex.EncodeToString(c.h.Sum(nil))
}

// HashFile computes the hex-encoded SHA-256 digest of the file at path.
// Used to re-derive a content hash for files downloaded before the hash
// column existed.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err = io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file contents: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
