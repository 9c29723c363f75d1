package builder

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	indexLayout  = "index"
	indexFile    = "index.html"
	defaultTitle = "Home"
)

// writeIndex renders the listing page from every page of this build. It is
// regenerated on each build and never cached. Projects without an index
// template get no listing; written reports whether the page was produced.
func (b *Builder) writeIndex(ctx context.Context, cfg *domain.SiteConfig, outDir string, graph domain.TemplateGraph, pages []builtPage) (written bool, err error) {
	_, span := b.Tracer.Start(ctx, "build.index")
	defer span.End()

	if _, ok := graph[domain.TemplateName(indexLayout)]; !ok {
		b.Logger.Debug("no index template, skipping listing page")
		return false, nil
	}

	var posts, others []builtPage
	for _, p := range pages {
		if strings.HasPrefix(p.rel, domain.PostsDir+"/") {
			posts = append(posts, p)
			continue
		}
		others = append(others, p)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].page.SortTime().After(posts[j].page.SortTime())
	})
	if len(posts) > domain.DefaultIndexLimit {
		posts = posts[:domain.DefaultIndexLimit]
	}

	title := cfg.Title
	if title == "" {
		title = defaultTitle
	}
	data := map[string]any{
		"site": cfg.SiteFields(),
		"page": map[string]any{
			"title":  title,
			"layout": indexLayout,
			"url":    "/" + indexFile,
			"posts":  fieldsOf(posts),
			"pages":  fieldsOf(others),
		},
	}

	html, err := b.Renderer.Render(indexLayout, data)
	if err != nil {
		span.RecordError(err)
		return false, err
	}

	path := filepath.Join(outDir, indexFile)
	if err := b.fs.MkdirAll(outDir, domain.DirPerm); err != nil {
		return false, errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", outDir))
	}
	if err := afero.WriteFile(b.fs, path, html, domain.FilePerm); err != nil {
		span.RecordError(err)
		return false, errors.Join(domain.ErrOutputWriteFailed, zerr.With(err, "path", path))
	}

	span.SetAttribute("posts", len(posts))
	span.SetAttribute("pages", len(others))
	return true, nil
}

func fieldsOf(pages []builtPage) []map[string]any {
	out := make([]map[string]any, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.page.Fields())
	}
	return out
}

// copyStatic mirrors the static directory into <output>/static. Each file
// that cannot be copied is reported on its own.
func (b *Builder) copyStatic(outDir string) []*domain.FileError {
	src := b.project.StaticDir()
	if ok, _ := afero.DirExists(b.fs, src); !ok {
		return nil
	}
	dst := filepath.Join(outDir, domain.StaticDir)

	var errs []*domain.FileError
	for path := range b.Walker.WalkFiles(src, nil) {
		rel, err := filepath.Rel(src, path)
		if err != nil {
			continue
		}
		target := filepath.Join(dst, rel)
		if err := b.copyFile(path, target); err != nil {
			b.Logger.Warn("could not copy static file", "path", path, "error", err)
			errs = append(errs, &domain.FileError{
				Path: domain.MustSourcePath(path),
				Err:  errors.Join(domain.ErrStaticCopyFailed, zerr.With(err, "target", target)),
			})
		}
	}
	return errs
}

func (b *Builder) copyFile(src, dst string) error {
	data, err := afero.ReadFile(b.fs, src)
	if err != nil {
		return err
	}
	if err := b.fs.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return err
	}
	return afero.WriteFile(b.fs, dst, data, domain.FilePerm)
}
