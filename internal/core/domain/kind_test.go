package domain_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"

	"go.trai.ch/folio/internal/core/domain"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.ErrorKind
	}{
		{"nil", nil, domain.KindUnknown},
		{"plain", errors.New("boom"), domain.KindUnknown},
		{"corrupt manifest", errors.Join(domain.ErrManifestCorrupt, errors.New("eof")), domain.KindCorrupt},
		{"version", errors.Join(domain.ErrManifestVersionMismatch, zerr.With(errors.New("v2"), "found", 2)), domain.KindVersionMismatch},
		{"not exist", fmt.Errorf("open: %w", fs.ErrNotExist), domain.KindNotFound},
		{"io", errors.Join(domain.ErrFileHashFailed, errors.New("permission denied")), domain.KindIOFailure},
		{"hash of missing file", errors.Join(domain.ErrFileHashFailed, zerr.With(fs.ErrNotExist, "path", "gone.md")), domain.KindIOFailure},
		{"missing config", errors.Join(domain.ErrConfigNotFound, fs.ErrNotExist), domain.KindNotFound},
		{"serialization", errors.Join(domain.ErrSerializationFailed, errors.New("chan")), domain.KindSerialization},
		{"dependency", domain.ErrDependencyMissing, domain.KindDependencyMissing},
		{"canceled", fmt.Errorf("build: %w", context.Canceled), domain.KindCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.KindOf(tt.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "corrupt", domain.KindCorrupt.String())
	assert.Equal(t, "unknown", domain.ErrorKind(99).String())
}

func TestIsStructural(t *testing.T) {
	assert.True(t, domain.IsStructural(errors.Join(domain.ErrCacheStructure, errors.New("missing content dir"))))
	assert.True(t, domain.IsStructural(errors.Join(domain.ErrTemplateDirUnreadable, errors.New("eacces"))))
	assert.False(t, domain.IsStructural(errors.Join(domain.ErrFileHashFailed, errors.New("eacces"))))
}
