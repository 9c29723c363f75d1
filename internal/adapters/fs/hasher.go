package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

// DigestLen is the number of hex characters kept from the sha256 digest.
const DigestLen = 16

var _ ports.ContentHasher = (*Hasher)(nil)

// Hasher fingerprints file contents. The digest covers bytes only, never
// path, mtime or permission bits.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash returns the truncated sha256 of the file at path.
func (h *Hasher) Hash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", hashError(err, path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return h.HashReader(f, path)
}

// HashReader returns the truncated sha256 of r. path is only used for error metadata.
func (h *Hasher) HashReader(r io.Reader, path string) (string, error) {
	sum := sha256.New()
	if _, err := io.Copy(sum, r); err != nil {
		return "", hashError(err, path)
	}
	return hex.EncodeToString(sum.Sum(nil))[:DigestLen], nil
}

// HashBytes returns the truncated sha256 of b.
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])[:DigestLen]
}

// Changed reports whether the file differs from cached. Untracked files
// (empty cached) and missing files count as changed.
func (h *Hasher) Changed(path, cached string) (bool, error) {
	if cached == "" {
		return true, nil
	}
	if _, err := os.Stat(path); errors.Is(err, iofs.ErrNotExist) {
		return true, nil
	}
	current, err := h.Hash(path)
	if err != nil {
		return true, err
	}
	return current != cached, nil
}

func hashError(err error, path string) error {
	return errors.Join(domain.ErrFileHashFailed, zerr.With(err, "path", path))
}
