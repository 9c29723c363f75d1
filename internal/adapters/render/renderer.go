// Package render renders layouts written in Django/Jinja template syntax.
package render

import (
	"context"
	"errors"

	"github.com/flosch/pongo2/v6"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.LayoutRenderer    = (*Renderer)(nil)
	_ ports.DependencyChecker = (*Renderer)(nil)
)

// Renderer loads layouts from a templates directory.
type Renderer struct {
	dir string
}

// NewRenderer creates a Renderer rooted at dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render executes <layout>.html with data. A fresh template set is built for
// every call so edits to templates between builds are always picked up.
func (r *Renderer) Render(layout string, data map[string]any) ([]byte, error) {
	name := domain.TemplateName(layout)

	loader, err := pongo2.NewLocalFileSystemLoader(r.dir)
	if err != nil {
		return nil, errors.Join(domain.ErrLayoutRenderFailed, zerr.With(err, "dir", r.dir))
	}
	set := pongo2.NewSet("folio", loader)

	tpl, err := set.FromFile(name)
	if err != nil {
		return nil, errors.Join(domain.ErrLayoutRenderFailed, zerr.With(err, "layout", name))
	}
	if data == nil {
		data = map[string]any{}
	}
	out, err := tpl.ExecuteBytes(pongo2.Context(data))
	if err != nil {
		return nil, errors.Join(domain.ErrLayoutRenderFailed, zerr.With(err, "layout", name))
	}
	return out, nil
}

// Check reports ErrDependencyMissing when the templates directory is absent.
func (r *Renderer) Check(_ context.Context) error {
	if _, err := pongo2.NewLocalFileSystemLoader(r.dir); err != nil {
		return errors.Join(domain.ErrDependencyMissing, zerr.With(err, "dir", r.dir))
	}
	return nil
}
