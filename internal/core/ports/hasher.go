package ports

// ContentHasher fingerprints file contents for change detection.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ContentHasher interface {
	// Hash returns the 16-hex-char digest of the file's raw bytes.
	Hash(path string) (string, error)

	// Changed reports whether path differs from the cached digest. An empty
	// cached digest means the file is untracked. A missing file is reported
	// as changed without error.
	Changed(path, cached string) (bool, error)
}
