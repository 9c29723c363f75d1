package domain

import (
	"slices"
	"time"
)

// CacheVersion is the on-disk format version of the manifest and content entries.
// Any breaking change to record shape must increment it.
const CacheVersion = 1

// Manifest is the persisted index of tracked sources and the template graph.
type Manifest struct {
	Version   int                        `json:"version"`
	LastBuild *time.Time                 `json:"last_build"`
	Files     map[SourcePath]*FileRecord `json:"files"`
	Templates TemplateGraph              `json:"templates"`
}

// FileRecord tracks one content source.
type FileRecord struct {
	// Hash is the 16-hex-char content digest.
	Hash string `json:"hash"`
	// LastBuilt is the unix epoch seconds of the last (re)processing.
	LastBuilt float64 `json:"last_built"`
	// Layout is the template name used, if any.
	Layout string `json:"layout,omitempty"`
	// Templates is the ordered template chain the file was rendered with.
	Templates []string `json:"templates"`
	// Outputs lists the generated artifacts.
	Outputs []string `json:"outputs"`
}

// TemplateRecord tracks one template and its edges.
type TemplateRecord struct {
	Hash       string   `json:"hash"`
	Path       string   `json:"path"`
	Extends    []string `json:"extends"`
	Includes   []string `json:"includes"`
	ExtendedBy []string `json:"extended_by"`
	IncludedBy []string `json:"included_by"`
}

// NewManifest returns an empty manifest at the current cache version.
func NewManifest() *Manifest {
	return &Manifest{
		Version:   CacheVersion,
		Files:     make(map[SourcePath]*FileRecord),
		Templates: make(TemplateGraph),
	}
}

// LastBuiltTime converts LastBuilt to a time.Time.
func (r *FileRecord) LastBuiltTime() time.Time {
	return EpochToTime(r.LastBuilt)
}

// UsesAny reports whether the record's template chain intersects names.
func (r *FileRecord) UsesAny(names map[string]struct{}) bool {
	for _, t := range r.Templates {
		if _, ok := names[t]; ok {
			return true
		}
	}
	return false
}

// Record replaces the FileRecord for path, keeping previously tracked outputs.
func (m *Manifest) Record(path SourcePath, hash, layout string, templates []string, now time.Time) *FileRecord {
	rec := &FileRecord{
		Hash:      hash,
		LastBuilt: TimeToEpoch(now),
		Layout:    layout,
		Templates: slices.Clone(templates),
		Outputs:   []string{},
	}
	if prev, ok := m.Files[path]; ok {
		rec.Outputs = prev.Outputs
	}
	if rec.Templates == nil {
		rec.Templates = []string{}
	}
	m.Files[path] = rec
	return rec
}

// SetOutputs stores outputs on an existing record. It reports false if the
// path is not tracked.
func (m *Manifest) SetOutputs(path SourcePath, outputs []string) bool {
	rec, ok := m.Files[path]
	if !ok {
		return false
	}
	rec.Outputs = slices.Clone(outputs)
	return true
}

// Remove drops the record for path and returns it.
func (m *Manifest) Remove(path SourcePath) (*FileRecord, bool) {
	rec, ok := m.Files[path]
	if ok {
		delete(m.Files, path)
	}
	return rec, ok
}

// SourcePaths returns every tracked content source, excluding pseudo entries
// such as the config fingerprint, in sorted order.
func (m *Manifest) SourcePaths() []SourcePath {
	paths := make([]SourcePath, 0, len(m.Files))
	for p := range m.Files {
		if p.IsConfig() {
			continue
		}
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// ReplaceTemplates swaps the template table wholesale.
func (m *Manifest) ReplaceTemplates(g TemplateGraph) {
	m.Templates = g
	if m.Templates == nil {
		m.Templates = make(TemplateGraph)
	}
}

// ReferencedHashes returns the set of content hashes referenced by tracked sources.
func (m *Manifest) ReferencedHashes() map[string]struct{} {
	refs := make(map[string]struct{}, len(m.Files))
	for p, rec := range m.Files {
		if p.IsConfig() {
			continue
		}
		refs[rec.Hash] = struct{}{}
	}
	return refs
}

// TimeToEpoch converts t to fractional unix seconds.
func TimeToEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// EpochToTime converts fractional unix seconds to a time.Time.
func EpochToTime(sec float64) time.Time {
	return time.Unix(0, int64(sec*float64(time.Second)))
}
