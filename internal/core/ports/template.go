package ports

import "go.trai.ch/folio/internal/core/domain"

// TemplateAnalyzer extracts structural dependencies between templates.
type TemplateAnalyzer interface {
	// Analyze parses extends and include directives from one template.
	// A missing or unreadable file yields empty dependencies.
	Analyze(path string) domain.TemplateDeps

	// BuildGraph scans dir recursively and returns the linked template graph.
	BuildGraph(dir string) (domain.TemplateGraph, error)
}
