package builder

import (
	"context"
	"path/filepath"

	"go.trai.ch/folio/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// refreshTemplates rescans the template directory and stores the new graph.
// It returns the graph from the previous build, the current graph and the
// names of templates that were added, edited or deleted since.
func (b *Builder) refreshTemplates(ctx context.Context) (previous, graph domain.TemplateGraph, changed []string, err error) {
	_, span := b.Tracer.Start(ctx, "build.templates")
	defer span.End()

	previous = b.Cache.Manifest().Templates
	graph, err = b.Analyzer.BuildGraph(b.project.TemplatesDir())
	if err != nil {
		span.RecordError(err)
		return nil, nil, nil, err
	}

	changed = diffTemplates(previous, graph)
	if err := b.Cache.UpdateTemplates(graph); err != nil {
		span.RecordError(err)
		return nil, nil, nil, err
	}

	span.SetAttribute("templates", len(graph))
	span.SetAttribute("changed", changed)
	if len(changed) > 0 {
		b.Logger.Debug("templates changed", "templates", changed)
	}
	return previous, graph, changed, nil
}

// diffTemplates lists names present in only one graph or hashed differently.
func diffTemplates(previous, current domain.TemplateGraph) []string {
	var changed []string
	for _, name := range current.Names() {
		if templateChanged(name, previous, current) {
			changed = append(changed, name)
		}
	}
	for _, name := range previous.Names() {
		if _, ok := current[name]; !ok {
			changed = append(changed, name)
		}
	}
	return changed
}

func templateChanged(name string, previous, current domain.TemplateGraph) bool {
	prev, hadPrev := previous[name]
	cur, hasCur := current[name]
	if hadPrev != hasCur {
		return true
	}
	if !hasCur {
		return false
	}
	return prev.Hash != cur.Hash
}

// detect enumerates the content sources and fingerprints them concurrently.
// Tracked sources whose content still matches the manifest keep their
// recorded digest. Sources that cannot be hashed are recorded on stats and
// left out of the returned digests.
func (b *Builder) detect(ctx context.Context, stats *domain.BuildStats) ([]domain.SourcePath, map[domain.SourcePath]string, error) {
	ctx, span := b.Tracer.Start(ctx, "build.detect")
	defer span.End()

	sources, err := b.Walker.SourceFiles(b.project.ContentDir(), domain.SourceExt)
	if err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	m := b.Cache.Manifest()
	hashes := make([]string, len(sources))
	errs := make([]error, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			hashes[i], errs[i] = b.fingerprint(src, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	digests := make(map[domain.SourcePath]string, len(sources))
	for i, src := range sources {
		if errs[i] != nil {
			b.Logger.Warn("could not fingerprint source", "path", src.String(), "error", errs[i])
			stats.Errors = append(stats.Errors, &domain.FileError{Path: src, Err: errs[i]})
			continue
		}
		digests[src] = hashes[i]
	}

	span.SetAttribute("files", len(sources))
	return sources, digests, nil
}

// fingerprint returns the digest of src, asking the hasher for a fresh one
// only when the recorded digest no longer matches.
func (b *Builder) fingerprint(src domain.SourcePath, m *domain.Manifest) (string, error) {
	if rec, ok := m.Files[src]; ok {
		changed, err := b.Hasher.Changed(src.String(), rec.Hash)
		if err == nil && !changed {
			return rec.Hash, nil
		}
	}
	return b.Hasher.Hash(src.String())
}

// configState is the fingerprint of the site config for this build.
type configState struct {
	key     domain.SourcePath
	hash    string
	changed bool
}

// detectConfig fingerprints the config file against its pseudo record. A
// config that appeared, disappeared, was renamed or was edited counts as
// changed.
func (b *Builder) detectConfig() configState {
	m := b.Cache.Manifest()

	var known []domain.SourcePath
	for path := range m.Files {
		if path.IsConfig() {
			known = append(known, path)
		}
	}

	path := b.Config.Path(b.project.Root)
	if path == "" {
		return configState{changed: len(known) > 0}
	}

	state := configState{key: domain.ConfigKey(filepath.Base(path))}
	hash, err := b.Hasher.Hash(path)
	if err != nil {
		b.Logger.Warn("could not fingerprint config", "path", path, "error", err)
		state.changed = true
		return state
	}
	state.hash = hash

	rec, ok := m.Files[state.key]
	state.changed = !ok || rec.Hash != hash || len(known) > 1
	return state
}

// recordConfig stores the config fingerprint and drops stale ones.
func (b *Builder) recordConfig(state configState) error {
	for path := range b.Cache.Manifest().Files {
		if !path.IsConfig() || path == state.key {
			continue
		}
		if _, err := b.Cache.RemoveFile(path); err != nil {
			return err
		}
	}
	if state.key == "" || state.hash == "" {
		return nil
	}
	return b.Cache.UpdateFile(state.key, state.hash, "", nil)
}

// expand returns the sources that must be reprocessed: new or edited
// sources plus every source rendered with a template depending on a changed
// one. A changed config affects everything.
func (b *Builder) expand(
	ctx context.Context,
	sources []domain.SourcePath,
	digests map[domain.SourcePath]string,
	configChanged bool,
	changedTemplates []string,
	previous, graph domain.TemplateGraph,
) map[domain.SourcePath]struct{} {
	_, span := b.Tracer.Start(ctx, "build.expand")
	defer span.End()

	m := b.Cache.Manifest()
	affected := make(map[domain.SourcePath]struct{}, len(sources))

	if configChanged {
		for _, src := range sources {
			affected[src] = struct{}{}
		}
		b.Logger.Debug("site config changed, rebuilding every source")
		span.SetAttribute("config_changed", true)
		span.SetAttribute("affected", len(affected))
		return affected
	}

	for src, hash := range digests {
		if rec, ok := m.Files[src]; !ok || rec.Hash != hash {
			affected[src] = struct{}{}
		}
	}

	if len(changedTemplates) > 0 {
		dependents := graph.Dependents(changedTemplates...)
		for name := range previous.Dependents(changedTemplates...) {
			dependents[name] = struct{}{}
		}
		for _, src := range sources {
			if rec, ok := m.Files[src]; ok && rec.UsesAny(dependents) {
				affected[src] = struct{}{}
			}
		}
	}

	span.SetAttribute("config_changed", false)
	span.SetAttribute("affected", len(affected))
	return affected
}
