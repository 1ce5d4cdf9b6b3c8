// Package solutiongen builds and renders the solution descriptor.
package solutiongen

import (
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
)

const (
	formatVersionLine    = "Microsoft Visual Studio Solution File, Format Version 12.00"
	generatorVersionLine = "# Visual Studio 15"
	crlf                 = "\r\n"
)

// Build filters the snapshot down to units with at least one classified
// source file, preserving their order, and assigns each its stable project
// identifier.
func Build(settings domain.Settings, graph *domain.Graph) domain.SolutionDescriptor {
	d := domain.SolutionDescriptor{
		ProjectName:   settings.ProjectName,
		TypeGUID:      domain.SolutionTypeGUID,
		Configuration: domain.SolutionConfiguration,
	}
	for _, unit := range graph.Units() {
		if !graph.HasSources(unit.Name) {
			continue
		}
		name := unit.Name.String()
		d.Entries = append(d.Entries, domain.SolutionEntry{
			GUID: domain.ProjectGUID(settings.ProjectName, name),
			Name: name,
			Path: settings.DescriptorRelPath(name),
		})
	}
	return d
}

// Render produces the solution text: CRLF line endings throughout and tab
// indentation, never literal spaces.
func Render(d domain.SolutionDescriptor) string {
	var b strings.Builder
	w := func(s string) {
		b.WriteString(s)
		b.WriteString(crlf)
	}

	w("")
	w(formatVersionLine)
	w(generatorVersionLine)

	for _, e := range d.Entries {
		w(`Project("{` + d.TypeGUID + `}") = "` + e.Name + `", "` + e.Path + `", "{` + e.GUID + `}"`)
		w("EndProject")
	}

	w("Global")
	w("\tGlobalSection(SolutionConfigurationPlatforms) = preSolution")
	w("\t\t" + d.Configuration + " = " + d.Configuration)
	w("\tEndGlobalSection")
	w("\tGlobalSection(ProjectConfigurationPlatforms) = postSolution")
	for _, e := range d.Entries {
		w("\t\t{" + e.GUID + "}." + d.Configuration + ".ActiveCfg = " + d.Configuration)
		w("\t\t{" + e.GUID + "}." + d.Configuration + ".Build.0 = " + d.Configuration)
	}
	w("\tEndGlobalSection")
	w("\tGlobalSection(SolutionProperties) = preSolution")
	w("\t\tHideSolutionNode = FALSE")
	w("\tEndGlobalSection")
	w("EndGlobal")

	return b.String()
}
