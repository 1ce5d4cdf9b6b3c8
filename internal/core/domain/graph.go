package domain

// Graph is one in-memory snapshot of the compilation-unit graph, indexed by
// unit name. It is rebuilt from the provider on every sync and discarded
// afterwards. Cycles among unit references are an assumed invariant of the
// input; the graph neither detects nor breaks them.
type Graph struct {
	units   []CompilationUnit
	byName  map[InternedString]*CompilationUnit
	sources map[InternedString][]string
}

// NewGraph indexes the provider's units, keeping their order. isSource decides
// which of a unit's files count as classified sources.
func NewGraph(units []CompilationUnit, isSource func(path string) bool) *Graph {
	g := &Graph{
		units:   units,
		byName:  make(map[InternedString]*CompilationUnit, len(units)),
		sources: make(map[InternedString][]string, len(units)),
	}
	for i := range g.units {
		u := &g.units[i]
		g.byName[u.Name] = u
		var srcs []string
		for _, f := range u.SourceFiles {
			if isSource(f) {
				srcs = append(srcs, f)
			}
		}
		g.sources[u.Name] = srcs
	}
	return g
}

// Units returns the snapshot's units in provider order.
func (g *Graph) Units() []CompilationUnit {
	return g.units
}

// Lookup finds a unit by name.
func (g *Graph) Lookup(name InternedString) (*CompilationUnit, bool) {
	u, ok := g.byName[name]
	return u, ok
}

// ClassifiedSources returns the unit's source files that classified as
// compilable.
func (g *Graph) ClassifiedSources(name InternedString) []string {
	return g.sources[name]
}

// HasSources reports whether the unit has at least one classified source
// file. Units without sources are excluded from the solution and can only be
// referenced through their output artifact.
func (g *Graph) HasSources(name InternedString) bool {
	return len(g.sources[name]) > 0
}
