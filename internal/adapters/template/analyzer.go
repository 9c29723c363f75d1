// Package template builds the dependency graph between layout templates.
package template

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/folio/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	extendsPattern = regexp.MustCompile(`{%-?\s*extends\s+["']([^"']+)["']\s*-?%}`)
	includePattern = regexp.MustCompile(`{%-?\s*include\s+["']([^"']+)["'][^%]*-?%}`)
)

var _ ports.TemplateAnalyzer = (*Analyzer)(nil)

// Analyzer scans templates for extends and include directives.
type Analyzer struct {
	logger ports.Logger
	hasher ports.ContentHasher
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(logger ports.Logger, hasher ports.ContentHasher) *Analyzer {
	return &Analyzer{logger: logger, hasher: hasher}
}

// Analyze returns the forward edges of the template at path. Only the first
// extends directive counts. Unreadable files yield empty edges.
func (a *Analyzer) Analyze(path string) domain.TemplateDeps {
	deps := domain.TemplateDeps{Extends: []string{}, Includes: []string{}}

	src, err := os.ReadFile(path) //nolint:gosec // Path comes from the templates directory scan
	if err != nil {
		a.logger.Warn("could not read template", "path", path, "error", err)
		return deps
	}

	if m := extendsPattern.FindSubmatch(src); m != nil {
		deps.Extends = append(deps.Extends, string(m[1]))
	}
	for _, m := range includePattern.FindAllSubmatch(src, -1) {
		deps.Includes = append(deps.Includes, string(m[1]))
	}
	return deps
}

// BuildGraph scans dir recursively for templates, hashes each one and links
// reverse edges. A missing directory yields an empty graph. A template that
// cannot be hashed gets an empty hash, so it always compares as changed.
func (a *Analyzer) BuildGraph(dir string) (domain.TemplateGraph, error) {
	graph := make(domain.TemplateGraph)

	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return graph, nil
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != domain.TemplateExt {
			return nil
		}
		deps := a.Analyze(path)
		hash, hashErr := a.hasher.Hash(path)
		if hashErr != nil {
			a.logger.Warn("could not hash template", "path", path, "error", hashErr)
		}
		graph[d.Name()] = &domain.TemplateRecord{
			Hash:     hash,
			Path:     path,
			Extends:  deps.Extends,
			Includes: deps.Includes,
		}
		return nil
	})
	if err != nil {
		return nil, errors.Join(domain.ErrTemplateDirUnreadable, zerr.With(err, "path", dir))
	}

	graph.Link()
	return graph, nil
}
