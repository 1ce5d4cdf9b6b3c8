package solutiongen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/slnsync/internal/engine/classify"
	"go.trai.ch/slnsync/internal/engine/solutiongen"
)

func buildGraph(units ...domain.CompilationUnit) *domain.Graph {
	c := classify.New(nil, nil)
	return domain.NewGraph(units, c.IsSource)
}

func TestBuild_ExcludesSourcelessUnits(t *testing.T) {
	settings := domain.DefaultSettings()
	graph := buildGraph(
		domain.CompilationUnit{
			Name:        domain.NewInternedString("Core"),
			SourceFiles: []string{"Assets/A.cs"},
		},
		domain.CompilationUnit{
			Name:       domain.NewInternedString("Prebuilt"),
			OutputPath: "Library/Prebuilt.dll",
		},
	)

	d := solutiongen.Build(settings, graph)

	require.Len(t, d.Entries, 1)
	assert.Equal(t, "Core", d.Entries[0].Name)
	assert.Equal(t, "Projects/Core/Core.csproj", d.Entries[0].Path)
	assert.Equal(t, domain.ProjectGUID("Project", "Core"), d.Entries[0].GUID)
}

func TestBuild_PreservesProviderOrder(t *testing.T) {
	settings := domain.DefaultSettings()
	graph := buildGraph(
		domain.CompilationUnit{Name: domain.NewInternedString("Zeta"), SourceFiles: []string{"z/A.cs"}},
		domain.CompilationUnit{Name: domain.NewInternedString("Alpha"), SourceFiles: []string{"a/A.cs"}},
	)

	d := solutiongen.Build(settings, graph)

	require.Len(t, d.Entries, 2)
	assert.Equal(t, "Zeta", d.Entries[0].Name)
	assert.Equal(t, "Alpha", d.Entries[1].Name)
}

func TestRender_Structure(t *testing.T) {
	settings := domain.DefaultSettings()
	graph := buildGraph(
		domain.CompilationUnit{Name: domain.NewInternedString("Core"), SourceFiles: []string{"Assets/A.cs"}},
		domain.CompilationUnit{Name: domain.NewInternedString("Editor"), SourceFiles: []string{"Assets/Editor/A.cs"}},
	)

	text := solutiongen.Render(solutiongen.Build(settings, graph))
	lines := strings.Split(text, "\r\n")

	// Leading blank line before the header.
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "Microsoft Visual Studio Solution File, Format Version 12.00", lines[1])
	assert.Equal(t, "# Visual Studio 15", lines[2])

	coreGUID := domain.ProjectGUID("Project", "Core")
	assert.Contains(t, text,
		`Project("{`+domain.SolutionTypeGUID+`}") = "Core", "Projects/Core/Core.csproj", "{`+coreGUID+`}"`)
	assert.Contains(t, text, "\t\tDebug|Any CPU = Debug|Any CPU\r\n")
	assert.Contains(t, text, "\t\t{"+coreGUID+"}.Debug|Any CPU.ActiveCfg = Debug|Any CPU\r\n")
	assert.Contains(t, text, "\t\t{"+coreGUID+"}.Debug|Any CPU.Build.0 = Debug|Any CPU\r\n")
	assert.Contains(t, text, "\t\tHideSolutionNode = FALSE\r\n")
	assert.True(t, strings.HasSuffix(text, "EndGlobal\r\n"))

	// Tabs only, never space indentation.
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, " "), "line %q starts with a space", line)
	}
}

func TestRender_Deterministic(t *testing.T) {
	settings := domain.DefaultSettings()
	graph := buildGraph(
		domain.CompilationUnit{Name: domain.NewInternedString("Core"), SourceFiles: []string{"Assets/A.cs"}},
	)

	first := solutiongen.Render(solutiongen.Build(settings, graph))
	second := solutiongen.Render(solutiongen.Build(settings, graph))
	assert.Equal(t, first, second)
}
