// Package projectgen builds and renders per-unit project descriptors.
package projectgen

import (
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/slnsync/internal/engine/classify"
	"go.trai.ch/slnsync/internal/engine/respfile"
	"go.trai.ch/zerr"
)

// defineSeed is always the head of every define list.
var defineSeed = []string{"DEBUG", "TRACE"}

// defaultLanguageVersion is used when neither the response files nor the unit
// specify one.
const defaultLanguageVersion = "latest"

// Builder turns compilation units into project descriptors.
type Builder struct {
	settings   domain.Settings
	classifier *classify.Classifier
}

// NewBuilder creates a Builder for one settings snapshot.
func NewBuilder(settings domain.Settings, classifier *classify.Classifier) *Builder {
	return &Builder{settings: settings, classifier: classifier}
}

// Build resolves one unit into a descriptor. The rendered text of the result
// is byte-identical for equal input sets regardless of provider iteration
// order: every derived list below is either explicitly sorted or ordered by a
// defined precedence. An unsupported API compatibility level fails this unit
// only.
func (b *Builder) Build(graph *domain.Graph, unit *domain.CompilationUnit, resp []domain.ResponseFileData, ownedAssets []domain.AssetFile) (*domain.ProjectDescriptor, error) {
	targetFramework, err := unit.Options.ApiCompat.TargetFramework()
	if err != nil {
		return nil, zerr.With(err, "unit_name", unit.Name.String())
	}

	merged := respfile.MergeOtherArguments(resp)
	compile := compileRule(graph.ClassifiedSources(unit.Name))

	d := &domain.ProjectDescriptor{
		Name:            unit.Name.String(),
		GUID:            domain.ProjectGUID(b.settings.ProjectName, unit.Name.String()),
		TargetFramework: targetFramework,
		Compile:         compile,
		Assets:          b.assetIncludes(ownedAssets),
		Analyzers:       respfile.AnalyzerPaths(merged, unit.Options.Analyzers, b.settings.ProjectRoot),
		AnalyzerPackage: b.analyzerPackage(compile.RootDir),
		Defines:         b.defines(unit, resp),
		LanguageVersion: respfile.LanguageVersion(merged, unit.Options.LanguageVersion),
		AllowUnsafe:     respfile.AllowUnsafe(unit.Options.AllowUnsafe, resp),
		RulesetPaths:    respfile.RulesetPaths(unit.Options.RulesetPath, merged, b.settings.ProjectRoot),
	}
	if d.LanguageVersion == "" {
		d.LanguageVersion = defaultLanguageVersion
	}

	d.References, d.ProjectReferences = b.references(graph, unit, resp)
	return d, nil
}

// compileRule computes the include rule for a unit's sources: the shallowest
// common directory plus one recursive rule per distinct extension present.
func compileRule(sources []string) domain.CompileRule {
	extSet := make(map[string]struct{})
	for _, src := range sources {
		if ext := strings.ToLower(filepath.Ext(src)); ext != "" {
			extSet[ext] = struct{}{}
		}
	}
	exts := make([]string, 0, len(extSet))
	for ext := range extSet {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	return domain.CompileRule{
		RootDir:    commonRoot(sources),
		Extensions: exts,
	}
}

// commonRoot finds the shallowest directory containing every path.
func commonRoot(paths []string) string {
	if len(paths) == 0 {
		return "."
	}
	common := strings.Split(filepath.ToSlash(filepath.Dir(paths[0])), "/")
	for _, p := range paths[1:] {
		segments := strings.Split(filepath.ToSlash(filepath.Dir(p)), "/")
		if len(segments) < len(common) {
			common = common[:len(segments)]
		}
		for i := range common {
			if common[i] != segments[i] {
				common = common[:i]
				break
			}
		}
	}
	if len(common) == 0 || (len(common) == 1 && common[0] == "") {
		return "."
	}
	return strings.Join(common, "/")
}

// assetIncludes keeps the owned assets that classified as non-source, sorted
// by path.
func (b *Builder) assetIncludes(assets []domain.AssetFile) []string {
	var out []string
	for _, a := range assets {
		if b.classifier.Classify(a.Extension) == classify.TypeNone {
			out = append(out, filepath.ToSlash(a.Path))
		}
	}
	sort.Strings(out)
	return out
}

// references splits the unit's dependencies into binary references and
// project references. A referenced unit without classified sources is a
// binary dependency on its output artifact; one with sources becomes a
// project reference to its own descriptor.
func (b *Builder) references(graph *domain.Graph, unit *domain.CompilationUnit, resp []domain.ResponseFileData) ([]domain.Reference, []domain.ProjectReference) {
	pathSet := make(map[string]struct{})
	addPath := func(p string) {
		if p != "" {
			pathSet[respfile.Absolute(p, b.settings.ProjectRoot)] = struct{}{}
		}
	}

	for _, p := range unit.PrecompiledReferences {
		addPath(p)
	}
	for _, data := range resp {
		for _, p := range data.FullPathReferences {
			addPath(p)
		}
	}

	var projectRefs []domain.ProjectReference
	for _, refName := range unit.References {
		dep, ok := graph.Lookup(refName)
		if !ok {
			continue
		}
		if !graph.HasSources(refName) {
			addPath(dep.OutputPath)
			continue
		}
		name := refName.String()
		projectRefs = append(projectRefs, domain.ProjectReference{
			DescriptorPath: filepath.ToSlash(filepath.Join("..", name, name+".csproj")),
			GUID:           domain.ProjectGUID(b.settings.ProjectName, name),
			Name:           name,
		})
	}
	sort.Slice(projectRefs, func(i, j int) bool { return projectRefs[i].Name < projectRefs[j].Name })

	refs := make([]domain.Reference, 0, len(pathSet))
	for p := range pathSet {
		refs = append(refs, domain.Reference{
			Path: p,
			Name: strings.TrimSuffix(filepath.Base(p), filepath.Ext(p)),
		})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })

	return refs, projectRefs
}

// analyzerPackage decides whether the fixed external analyzer package applies
// to this unit.
func (b *Builder) analyzerPackage(compileRoot string) *domain.PackageReference {
	if b.settings.AnalyzerPackageName == "" {
		return nil
	}
	if !b.settings.IncludeAnalyzerPackage && !b.underPrimaryTree(compileRoot) {
		return nil
	}
	return &domain.PackageReference{
		Name:    b.settings.AnalyzerPackageName,
		Version: b.settings.AnalyzerPackageVersion,
	}
}

func (b *Builder) underPrimaryTree(dir string) bool {
	primary := filepath.ToSlash(b.settings.PrimarySourceDir)
	if primary == "" {
		return false
	}
	return dir == primary || strings.HasPrefix(dir, primary+"/")
}

// defines concatenates, in order, the fixed seed, the unit's own defines,
// every response file's defines, and the ambient build-setting defines,
// keeping the first occurrence of each.
func (b *Builder) defines(unit *domain.CompilationUnit, resp []domain.ResponseFileData) []string {
	combined := make([]string, 0, len(defineSeed)+len(unit.Defines)+len(b.settings.ExtraDefines))
	combined = append(combined, defineSeed...)
	combined = append(combined, unit.Defines...)
	for _, data := range resp {
		combined = append(combined, data.Defines...)
	}
	combined = append(combined, b.settings.ExtraDefines...)

	seen := make(map[string]struct{}, len(combined))
	out := make([]string, 0, len(combined))
	for _, d := range combined {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
