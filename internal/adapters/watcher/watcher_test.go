package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/folio/internal/adapters/watcher"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/folio/internal/core/ports/mocks"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(logger, 20*time.Millisecond)
	require.NoError(t, err)
	return w
}

func TestFingerprints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.md")
	writeFile(t, path, "one")

	f := watcher.NewFingerprints()
	f.Seed(path)
	assert.False(t, f.Changed(path), "seeded content is unchanged")

	writeFile(t, path, "one")
	assert.False(t, f.Changed(path), "identical rewrite is unchanged")

	writeFile(t, path, "two")
	assert.True(t, f.Changed(path))

	require.NoError(t, os.Remove(path))
	assert.True(t, f.Changed(path), "known file that vanished changed")
	assert.False(t, f.Changed(path), "unknown missing file did not")

	writeFile(t, path, "three")
	assert.True(t, f.Changed(path), "new file changed")
	f.Forget(filepath.Dir(path))
	assert.True(t, f.Changed(path), "forgotten file is new again")
}

func TestWatcher_Ignored(t *testing.T) {
	root := t.TempDir()
	w := newWatcher(t)
	require.NoError(t, w.Start(context.Background(), root, []string{"_site", domain.CacheDirName}))
	t.Cleanup(func() { _ = w.Stop() })

	tests := map[string]bool{
		filepath.Join(root, "content", "a.md"):         false,
		filepath.Join(root, "templates", "base.html"):  false,
		filepath.Join(root, "_site", "index.html"):     true,
		filepath.Join(root, ".cache", "manifest.json"): true,
		filepath.Join(root, "content", ".a.md.swp"):    true,
		filepath.Join(root, ".git", "HEAD"):            true,
		filepath.Join(filepath.Dir(root), "elsewhere"): true,
		filepath.Join(root, "_site_notes", "draft.md"): false,
	}
	for path, want := range tests {
		assert.Equal(t, want, w.Ignored(path), path)
	}
}

func TestWatcher_ReportsContentChanges(t *testing.T) {
	root := t.TempDir()
	page := filepath.Join(root, "content", "a.md")
	writeFile(t, page, "before")
	writeFile(t, filepath.Join(root, "_site", "a.html"), "out")

	w := newWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root, []string{"_site"}))

	batches := make(chan []ports.Change, 4)
	go func() {
		for batch := range w.Changes() {
			batches <- batch
		}
		close(batches)
	}()

	writeFile(t, filepath.Join(root, "_site", "a.html"), "ignored")
	writeFile(t, page, "after")

	select {
	case batch := <-batches:
		require.NotEmpty(t, batch)
		for _, c := range batch {
			assert.Equal(t, page, c.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch received")
	}

	require.NoError(t, w.Stop())
	for range batches {
	}
}
