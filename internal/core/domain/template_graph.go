package domain

import (
	"slices"
	"strings"
)

// TemplateDeps holds the forward edges parsed out of a single template.
type TemplateDeps struct {
	Extends  []string
	Includes []string
}

// TemplateGraph maps template names (file base names) to their records.
type TemplateGraph map[string]*TemplateRecord

// TemplateName maps a layout name to its template file name.
func TemplateName(layout string) string {
	if strings.HasSuffix(layout, TemplateExt) {
		return layout
	}
	return layout + TemplateExt
}

// Link populates ExtendedBy and IncludedBy by inverting the forward edges.
// References to templates missing from the graph are dropped.
func (g TemplateGraph) Link() {
	for _, rec := range g {
		rec.ExtendedBy = []string{}
		rec.IncludedBy = []string{}
	}
	for _, name := range g.Names() {
		rec := g[name]
		for _, parent := range rec.Extends {
			if target, ok := g[parent]; ok {
				target.ExtendedBy = append(target.ExtendedBy, name)
			}
		}
		for _, inc := range rec.Includes {
			if target, ok := g[inc]; ok {
				target.IncludedBy = append(target.IncludedBy, name)
			}
		}
	}
}

// Names returns the template names in sorted order.
func (g TemplateGraph) Names() []string {
	names := make([]string, 0, len(g))
	for n := range g {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Dependents returns the seeds plus every template that transitively extends
// or includes one of them. Traversal uses one shared visited set, so cyclic
// graphs terminate.
func (g TemplateGraph) Dependents(seeds ...string) map[string]struct{} {
	visited := make(map[string]struct{}, len(seeds))
	queue := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := visited[s]; ok {
			continue
		}
		visited[s] = struct{}{}
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		rec, ok := g[name]
		if !ok {
			continue
		}
		for _, next := range slices.Concat(rec.ExtendedBy, rec.IncludedBy) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
	return visited
}

// Chain returns the templates a page rendered with layout depends on: the
// layout itself, its extends ancestors, then everything reachable through
// includes. Names absent from the graph are still listed so that a later
// addition of the template is noticed.
func (g TemplateGraph) Chain(layout string) []string {
	if layout == "" {
		return []string{}
	}

	var chain []string
	seen := make(map[string]struct{})
	add := func(name string) bool {
		if _, ok := seen[name]; ok {
			return false
		}
		seen[name] = struct{}{}
		chain = append(chain, name)
		return true
	}

	for name := TemplateName(layout); name != ""; {
		if !add(name) {
			break
		}
		rec, ok := g[name]
		if !ok || len(rec.Extends) == 0 {
			break
		}
		name = rec.Extends[0]
	}

	for i := 0; i < len(chain); i++ {
		rec, ok := g[chain[i]]
		if !ok {
			continue
		}
		for _, inc := range rec.Includes {
			add(inc)
		}
	}
	return chain
}
