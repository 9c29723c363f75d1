package builder

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/folio/internal/core/domain"
	"go.trai.ch/zerr"
)

// reconcilePlan is everything per-file reconciliation needs to know about
// the current build.
type reconcilePlan struct {
	cfg      *domain.SiteConfig
	outDir   string
	formats  []string
	digests  map[domain.SourcePath]string
	affected map[domain.SourcePath]struct{}
	previous domain.TemplateGraph
	graph    domain.TemplateGraph
}

// builtPage is one source's page as it ended up in this build.
type builtPage struct {
	rel  string
	page *domain.Page
}

// reconcileAll brings the outputs of every fingerprinted source up to date.
// The context is checked between files. Manifest write failures abort the
// build; any other failure is recorded against its file.
func (b *Builder) reconcileAll(ctx context.Context, plan *reconcilePlan, sources []domain.SourcePath, stats *domain.BuildStats) ([]builtPage, error) {
	ctx, span := b.Tracer.Start(ctx, "build.reconcile")
	defer span.End()

	pages := make([]builtPage, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return nil, zerr.Wrap(err, "build cancelled")
		}

		hash, ok := plan.digests[src]
		if !ok {
			continue
		}

		page, cached, outputs, err := b.reconcile(ctx, plan, src, hash)
		if err != nil {
			if isManifestFailure(err) {
				span.RecordError(err)
				return nil, err
			}
			b.Logger.Warn("could not build source", "path", src.String(), "error", err)
			stats.Errors = append(stats.Errors, &domain.FileError{Path: src, Err: err})
			continue
		}

		if cached {
			stats.Cached++
		} else {
			stats.Rebuilt++
		}
		stats.Outputs += outputs

		rel, _ := src.Rel(b.project.ContentDir())
		pages = append(pages, builtPage{rel: rel, page: page})
	}

	span.SetAttribute("rebuilt", stats.Rebuilt)
	span.SetAttribute("cached", stats.Cached)
	span.SetAttribute("errors", len(stats.Errors))
	return pages, nil
}

// reconcile regenerates the outputs of one source, reusing its cached page
// when the source is unaffected and none of its templates changed.
func (b *Builder) reconcile(ctx context.Context, plan *reconcilePlan, src domain.SourcePath, hash string) (*domain.Page, bool, int, error) {
	rec := b.Cache.Manifest().Files[src]

	if _, hit := plan.affected[src]; !hit && rec != nil {
		if entry, ok := b.Cache.GetContent(hash); ok && !usedTemplatesChanged(rec.Templates, plan.previous, plan.graph) {
			page := &entry.Page
			page.Templates = slices.Clone(rec.Templates)
			outputs, err := b.generate(ctx, plan, page, src)
			if err != nil {
				return nil, false, 0, err
			}
			if err := b.track(src, rec.Outputs, outputs); err != nil {
				return nil, false, 0, err
			}
			b.Logger.Debug("reused cached page", "path", src.String(), "hash", hash)
			return page, true, len(outputs), nil
		}
	}

	page, err := b.Processor.Process(ctx, src)
	if err != nil {
		return nil, false, 0, err
	}
	page.Templates = plan.graph.Chain(page.Layout)

	if err := b.Cache.PutContent(hash, page); err != nil {
		b.Logger.Warn("page not cached, continuing without it", "path", src.String(), "kind", domain.KindOf(err).String())
	}

	outputs, err := b.generate(ctx, plan, page, src)
	if err != nil {
		return nil, false, 0, err
	}

	var previous []string
	if rec != nil {
		previous = rec.Outputs
	}
	if err := b.Cache.UpdateFile(src, hash, page.Layout, page.Templates); err != nil {
		return nil, false, 0, err
	}
	if err := b.track(src, previous, outputs); err != nil {
		return nil, false, 0, err
	}
	b.Logger.Debug("rebuilt source", "path", src.String(), "hash", hash)
	return page, false, len(outputs), nil
}

// usedTemplatesChanged re-checks every template of a page's chain against
// the hashes recorded by the previous build.
func usedTemplatesChanged(used []string, previous, current domain.TemplateGraph) bool {
	for _, name := range used {
		if templateChanged(name, previous, current) {
			return true
		}
	}
	return false
}

// generate writes every configured format for page.
func (b *Builder) generate(ctx context.Context, plan *reconcilePlan, page *domain.Page, src domain.SourcePath) ([]string, error) {
	rel, err := src.Rel(b.project.ContentDir())
	if err != nil {
		return nil, errors.Join(domain.ErrContentProcessFailed, zerr.With(err, "path", src.String()))
	}
	base := filepath.Join(plan.outDir, filepath.FromSlash(strings.TrimSuffix(rel, filepath.Ext(rel))))

	outputs := make([]string, 0, len(plan.formats))
	for _, format := range plan.formats {
		out, err := b.Generator.Generate(ctx, plan.cfg, page, src, base, format)
		if err != nil {
			return nil, zerr.With(err, "format", format)
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// track records outputs for src and deletes artifacts of formats that are no
// longer generated.
func (b *Builder) track(src domain.SourcePath, previous, outputs []string) error {
	for _, stale := range previous {
		if slices.Contains(outputs, stale) {
			continue
		}
		b.removeOutput(stale)
	}
	return b.Cache.TrackOutputs(src, outputs)
}

// removeOrphans deletes the outputs and records of tracked sources that no
// longer exist. Deletion failures are logged, never escalated.
func (b *Builder) removeOrphans(ctx context.Context, sources []domain.SourcePath) int {
	_, span := b.Tracer.Start(ctx, "build.orphans")
	defer span.End()

	current := make(map[domain.SourcePath]struct{}, len(sources))
	for _, src := range sources {
		current[src] = struct{}{}
	}

	removed := 0
	for _, path := range b.Cache.Manifest().SourcePaths() {
		if _, ok := current[path]; ok {
			continue
		}
		rec, err := b.Cache.RemoveFile(path)
		if err != nil {
			b.Logger.Warn("could not drop orphaned record", "path", path.String(), "error", err)
			continue
		}
		if rec != nil {
			for _, out := range rec.Outputs {
				b.removeOutput(out)
			}
		}
		b.Logger.Debug("removed orphaned source", "path", path.String())
		removed++
	}

	span.SetAttribute("removed", removed)
	return removed
}

func (b *Builder) removeOutput(path string) {
	if err := b.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.Logger.Warn("could not remove output", "path", path, "error", err)
	}
}

// isManifestFailure reports whether err means the manifest could not be
// persisted, which no later file can recover from.
func isManifestFailure(err error) bool {
	return errors.Is(err, domain.ErrManifestWriteFailed) || errors.Is(err, domain.ErrManifestMarshalFailed)
}
