package projectgen

import (
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
)

const (
	xmlHeader      = `<?xml version="1.0" encoding="utf-8"?>`
	projectOpen    = `<Project ToolsVersion="4.0" DefaultTargets="Build" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">`
	projectClose   = `</Project>`
	csharpTargets  = `  <Import Project="$(MSBuildToolsPath)\Microsoft.CSharp.targets" />`
	warningLevel   = "4"
	crlf           = "\r\n"
)

// Render produces the project descriptor text: CRLF line endings, two-space
// indentation, a pure function of the descriptor.
func Render(d *domain.ProjectDescriptor) string {
	w := &lineWriter{}
	w.line(xmlHeader)
	w.line(projectOpen)

	renderProperties(w, d)
	renderCompileGroup(w, d)
	renderAssetGroup(w, d)
	renderReferenceGroup(w, d)
	renderProjectReferenceGroup(w, d)
	renderAnalyzerGroup(w, d)

	w.line(csharpTargets)
	w.line(projectClose)
	return w.String()
}

func renderProperties(w *lineWriter, d *domain.ProjectDescriptor) {
	w.line("  <PropertyGroup>")
	w.element(4, "ProjectGuid", "{"+d.GUID+"}")
	w.element(4, "OutputType", "Library")
	w.element(4, "AssemblyName", d.Name)
	// Legacy framework tiers use the versioned property name.
	if strings.HasPrefix(d.TargetFramework, "v") {
		w.element(4, "TargetFrameworkVersion", d.TargetFramework)
	} else {
		w.element(4, "TargetFramework", d.TargetFramework)
	}
	w.element(4, "LangVersion", d.LanguageVersion)
	w.element(4, "WarningLevel", warningLevel)
	if d.AllowUnsafe {
		w.element(4, "AllowUnsafeBlocks", "true")
	} else {
		w.element(4, "AllowUnsafeBlocks", "false")
	}
	w.line("  </PropertyGroup>")

	w.line("  <PropertyGroup>")
	w.element(4, "DefineConstants", strings.Join(d.Defines, ";"))
	for _, ruleset := range d.RulesetPaths {
		w.element(4, "CodeAnalysisRuleSet", ruleset)
	}
	w.line("  </PropertyGroup>")
}

func renderCompileGroup(w *lineWriter, d *domain.ProjectDescriptor) {
	if len(d.Compile.Extensions) == 0 {
		return
	}
	w.line("  <ItemGroup>")
	for _, ext := range d.Compile.Extensions {
		pattern := "**/*" + ext
		if d.Compile.RootDir != "." {
			pattern = d.Compile.RootDir + "/**/*" + ext
		}
		w.line(`    <Compile Include="` + escape(pattern) + `" />`)
	}
	w.line("  </ItemGroup>")
}

func renderAssetGroup(w *lineWriter, d *domain.ProjectDescriptor) {
	if len(d.Assets) == 0 {
		return
	}
	w.line("  <ItemGroup>")
	for _, path := range d.Assets {
		w.line(`    <None Include="` + escape(path) + `" />`)
	}
	w.line("  </ItemGroup>")
}

func renderReferenceGroup(w *lineWriter, d *domain.ProjectDescriptor) {
	if len(d.References) == 0 {
		return
	}
	w.line("  <ItemGroup>")
	for _, ref := range d.References {
		w.line(`    <Reference Include="` + escape(ref.Name) + `">`)
		w.element(6, "HintPath", ref.Path)
		w.line("    </Reference>")
	}
	w.line("  </ItemGroup>")
}

func renderProjectReferenceGroup(w *lineWriter, d *domain.ProjectDescriptor) {
	if len(d.ProjectReferences) == 0 {
		return
	}
	w.line("  <ItemGroup>")
	for _, ref := range d.ProjectReferences {
		w.line(`    <ProjectReference Include="` + escape(ref.DescriptorPath) + `">`)
		w.element(6, "Project", "{"+ref.GUID+"}")
		w.element(6, "Name", ref.Name)
		w.line("    </ProjectReference>")
	}
	w.line("  </ItemGroup>")
}

func renderAnalyzerGroup(w *lineWriter, d *domain.ProjectDescriptor) {
	if len(d.Analyzers) == 0 && d.AnalyzerPackage == nil {
		return
	}
	w.line("  <ItemGroup>")
	for _, path := range d.Analyzers {
		w.line(`    <Analyzer Include="` + escape(path) + `" />`)
	}
	if pkg := d.AnalyzerPackage; pkg != nil {
		w.line(`    <PackageReference Include="` + escape(pkg.Name) + `" Version="` + escape(pkg.Version) + `" />`)
	}
	w.line("  </ItemGroup>")
}

type lineWriter struct {
	b strings.Builder
}

func (w *lineWriter) line(s string) {
	w.b.WriteString(s)
	w.b.WriteString(crlf)
}

func (w *lineWriter) element(indent int, name, value string) {
	w.line(strings.Repeat(" ", indent) + "<" + name + ">" + escape(value) + "</" + name + ">")
}

func (w *lineWriter) String() string {
	return w.b.String()
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}
