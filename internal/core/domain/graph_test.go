package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnsync/internal/core/domain"
)

func TestGraph_ClassifiedSources(t *testing.T) {
	units := []domain.CompilationUnit{
		{
			Name:        domain.NewInternedString("Core"),
			SourceFiles: []string{"Assets/A.cs", "Assets/readme.txt"},
		},
		{
			Name:       domain.NewInternedString("Prebuilt"),
			OutputPath: "Library/Prebuilt.dll",
		},
	}

	g := domain.NewGraph(units, func(path string) bool {
		return strings.HasSuffix(path, ".cs")
	})

	assert.Equal(t, []string{"Assets/A.cs"}, g.ClassifiedSources(units[0].Name))
	assert.True(t, g.HasSources(units[0].Name))
	assert.False(t, g.HasSources(units[1].Name))
}

func TestGraph_LookupAndOrder(t *testing.T) {
	units := []domain.CompilationUnit{
		{Name: domain.NewInternedString("Zeta")},
		{Name: domain.NewInternedString("Alpha")},
	}

	g := domain.NewGraph(units, func(string) bool { return true })

	got := g.Units()
	require.Len(t, got, 2)
	assert.Equal(t, "Zeta", got[0].Name.String(), "provider order is preserved")

	u, ok := g.Lookup(domain.NewInternedString("Alpha"))
	require.True(t, ok)
	assert.Equal(t, "Alpha", u.Name.String())

	_, ok = g.Lookup(domain.NewInternedString("Ghost"))
	assert.False(t, ok)
}
