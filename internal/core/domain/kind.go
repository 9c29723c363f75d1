package domain

import (
	"context"
	"errors"
	"io/fs"
)

// ErrorKind is the closed set of failure categories surfaced by the cache layer.
type ErrorKind int

const (
	// KindUnknown is any error that does not match a known category.
	KindUnknown ErrorKind = iota
	// KindNotFound means the referenced file or entry does not exist.
	KindNotFound
	// KindCorrupt means persisted state exists but cannot be decoded.
	KindCorrupt
	// KindIOFailure means a read or write against the filesystem failed.
	KindIOFailure
	// KindVersionMismatch means persisted state was written by another cache version.
	KindVersionMismatch
	// KindSerialization means an in-memory value could not be encoded.
	KindSerialization
	// KindDependencyMissing means a required collaborator was not available.
	KindDependencyMissing
	// KindCanceled means the operation was interrupted.
	KindCanceled
	// KindExists means a file that must be new is already present.
	KindExists
)

var kindNames = map[ErrorKind]string{
	KindUnknown:           "unknown",
	KindNotFound:          "not_found",
	KindCorrupt:           "corrupt",
	KindIOFailure:         "io_failure",
	KindVersionMismatch:   "version_mismatch",
	KindSerialization:     "serialization",
	KindDependencyMissing: "dependency_missing",
	KindCanceled:          "canceled",
	KindExists:            "exists",
}

// String returns the snake_case name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

var kindTable = []struct {
	kind    ErrorKind
	targets []error
}{
	{KindCanceled, []error{context.Canceled, context.DeadlineExceeded}},
	{KindDependencyMissing, []error{ErrDependencyMissing}},
	{KindVersionMismatch, []error{ErrManifestVersionMismatch}},
	{KindSerialization, []error{ErrSerializationFailed, ErrManifestMarshalFailed}},
	{KindCorrupt, []error{ErrManifestCorrupt, ErrCacheEntryCorrupt, ErrCacheStructure, ErrFrontMatterInvalid}},
	{KindNotFound, []error{ErrCacheEntryNotFound, ErrConfigNotFound}},
	{KindExists, []error{ErrContentExists}},
	{KindIOFailure, []error{
		ErrFileHashFailed, ErrSourceWalkFailed, ErrManifestReadFailed, ErrManifestWriteFailed,
		ErrCacheReadFailed, ErrCacheWriteFailed, ErrCacheClearFailed, ErrTemplateDirUnreadable, ErrConfigReadFailed,
		ErrOutputWriteFailed, ErrOutputCleanFailed, ErrStaticCopyFailed, ErrScaffoldFailed,
	}},
	// Bare filesystem errors only count when no sentinel names the operation.
	{KindNotFound, []error{fs.ErrNotExist}},
}

// KindOf classifies err into an ErrorKind. Errors are matched with errors.Is,
// so sentinels must be attached with errors.Join to survive zerr wrapping.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	for _, row := range kindTable {
		for _, target := range row.targets {
			if errors.Is(err, target) {
				return row.kind
			}
		}
	}
	return KindUnknown
}

// IsStructural reports whether err means the cache itself cannot be trusted
// and a full rebuild is required.
func IsStructural(err error) bool {
	return errors.Is(err, ErrCacheStructure) ||
		errors.Is(err, ErrTemplateDirUnreadable) ||
		errors.Is(err, ErrManifestCorrupt) ||
		errors.Is(err, ErrManifestVersionMismatch)
}
