package domain

import (
	"fmt"
	"time"
)

// BuildMode records how a build invocation ended up running.
type BuildMode string

const (
	// ModeIncremental reprocesses only affected sources.
	ModeIncremental BuildMode = "incremental"
	// ModeFull reprocesses every source.
	ModeFull BuildMode = "full"
	// ModeFallback is a full rebuild triggered by a structural cache error.
	ModeFallback BuildMode = "fallback"
)

// BuildOptions are the caller's knobs for one build invocation.
type BuildOptions struct {
	Incremental  bool
	Clean        bool
	CollectStats bool
	// Formats overrides the configured output formats when non-empty.
	Formats []string
}

// FileError is a failure isolated to one source file.
type FileError struct {
	Path SourcePath
	Err  error
}

// Error implements error.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FileError) Unwrap() error {
	return e.Err
}

// BuildStats summarizes one build invocation.
type BuildStats struct {
	Mode         BuildMode
	CacheEnabled bool
	TotalFiles   int
	Rebuilt      int
	Cached       int
	Removed      int
	Duration     time.Duration
	Outputs      int
	Errors       []*FileError
}

// HitRate returns the share of files served from cache, in percent.
func (s *BuildStats) HitRate() float64 {
	if s.TotalFiles == 0 {
		return 0
	}
	return float64(s.Cached) / float64(s.TotalFiles) * 100
}

// CacheInfo reports the state of the build cache.
type CacheInfo struct {
	FilesTracked     int
	TemplatesTracked int
	DiskBytes        int64
	MemoryBytes      int64
	MemoryEntries    int
	LastBuild        *time.Time
}

const bytesPerMB = 1024 * 1024

// DiskMB returns the on-disk size in megabytes.
func (c *CacheInfo) DiskMB() float64 {
	return float64(c.DiskBytes) / bytesPerMB
}

// MemoryMB returns the in-memory tier size in megabytes.
func (c *CacheInfo) MemoryMB() float64 {
	return float64(c.MemoryBytes) / bytesPerMB
}

// MBToBytes converts a megabyte ceiling to bytes.
func MBToBytes(mb float64) int64 {
	return int64(mb * bytesPerMB)
}
