package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/folio/internal/adapters/fs"
	"go.trai.ch/folio/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "git config")
	writeFile(t, filepath.Join(tmpDir, "ignored", "file"), "ignored content")
	writeFile(t, filepath.Join(tmpDir, "css", "site.css"), "body{}")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# Readme")

	walker := fs.NewWalker()
	files := make(map[string]bool)
	for path := range walker.WalkFiles(tmpDir, []string{"ignored"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		files[filepath.ToSlash(rel)] = true
	}

	assert.False(t, files[".git/config"], "expected .git/config to be skipped")
	assert.False(t, files["ignored/file"], "expected ignored/file to be skipped")
	assert.True(t, files["css/site.css"])
	assert.True(t, files["README.md"])
}

func TestWalker_SourceFiles(t *testing.T) {
	tmpDir := t.TempDir()
	content := filepath.Join(tmpDir, "content")
	writeFile(t, filepath.Join(content, "b.md"), "b")
	writeFile(t, filepath.Join(content, "posts", "a.md"), "a")
	writeFile(t, filepath.Join(content, "notes.txt"), "skip")
	writeFile(t, filepath.Join(content, ".drafts", "c.md"), "hidden")

	files, err := fs.NewWalker().SourceFiles(content, domain.SourceExt)
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{
		domain.MustSourcePath(filepath.Join(content, "b.md")),
		domain.MustSourcePath(filepath.Join(content, "posts", "a.md")),
	}, files)

	missing, err := fs.NewWalker().SourceFiles(filepath.Join(tmpDir, "nope"), domain.SourceExt)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestHasher_Hash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.md")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher()

	hash1, err := hasher.Hash(path)
	require.NoError(t, err)
	assert.Equal(t, "b94d27b9934d3e08", hash1)
	assert.Len(t, hash1, fs.DigestLen)

	hash2, err := hasher.Hash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")

	assert.Equal(t, hash1, fs.HashBytes([]byte("hello world")))
	assert.NotEqual(t, hash1, fs.HashBytes([]byte("hello world!")))
}

func TestHasher_HashMissing(t *testing.T) {
	_, err := fs.NewHasher().Hash(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileHashFailed)
	assert.Equal(t, domain.KindIOFailure, domain.KindOf(err))
}

func TestHasher_Changed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.md")
	writeFile(t, path, "original")

	hasher := fs.NewHasher()
	digest, err := hasher.Hash(path)
	require.NoError(t, err)

	t.Run("untracked file is changed", func(t *testing.T) {
		changed, err := hasher.Changed(path, "")
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("identical content at new mtime is unchanged", func(t *testing.T) {
		writeFile(t, path, "original")
		later := time.Now().Add(time.Hour)
		require.NoError(t, os.Chtimes(path, later, later))

		changed, err := hasher.Changed(path, digest)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rewritten content is changed", func(t *testing.T) {
		writeFile(t, path, "rewritten")
		changed, err := hasher.Changed(path, digest)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("missing file is changed", func(t *testing.T) {
		changed, err := hasher.Changed(filepath.Join(dir, "gone.md"), digest)
		require.NoError(t, err)
		assert.True(t, changed)
	})
}
