// Package hooks implements the post-generation transform chain. Hooks are
// registered explicitly by whoever owns process startup; there is no runtime
// type scanning.
package hooks

// Kind selects which artifact class a hook applies to.
type Kind int

const (
	// KindSolution applies to the solution descriptor.
	KindSolution Kind = iota
	// KindProject applies to every project descriptor.
	KindProject
)

// Transform receives the artifact path and the running content. Returning
// ok=false leaves the running content unchanged.
type Transform func(path, content string) (replacement string, ok bool)

// Chain holds registered hooks per artifact kind. Hooks run in registration
// order, each receiving the previous hook's output, exactly once per
// artifact, immediately before the write-if-changed comparison.
type Chain struct {
	hooks map[Kind][]Transform
}

// NewChain creates an empty Chain.
func NewChain() *Chain {
	return &Chain{hooks: make(map[Kind][]Transform)}
}

// Register appends a hook for the given kind.
func (c *Chain) Register(kind Kind, fn Transform) {
	if fn == nil {
		return
	}
	c.hooks[kind] = append(c.hooks[kind], fn)
}

// Apply runs the chain for the kind over content and returns the final text.
func (c *Chain) Apply(kind Kind, path, content string) string {
	for _, fn := range c.hooks[kind] {
		if replacement, ok := fn(path, content); ok {
			content = replacement
		}
	}
	return content
}
