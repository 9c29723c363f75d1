package ports

import (
	"context"
	"iter"
)

// ChangeOp is the kind of filesystem change observed in a site project.
type ChangeOp uint8

const (
	// ChangeCreate is a new file or directory.
	ChangeCreate ChangeOp = iota
	// ChangeWrite is a modified file.
	ChangeWrite
	// ChangeRemove is a deleted file or directory.
	ChangeRemove
	// ChangeRename is a moved file or directory.
	ChangeRename
)

// Change is one filesystem event under the project root.
type Change struct {
	Path string
	Op   ChangeOp
}

// Watcher streams filesystem changes under a project root.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches root recursively. Hidden paths and the ignore paths
	// (absolute, or relative to root) are not reported.
	Start(ctx context.Context, root string, ignore []string) error
	// Stop releases the underlying watches.
	Stop() error
	// Changes yields debounced change batches until Stop is called.
	Changes() iter.Seq[[]Change]
}
