package domain

// CompileRule is the include rule for a unit's sources: every file under
// RootDir (recursively) carrying one of the listed extensions. A directory
// rule keeps the rendered descriptor stable when files are added or removed
// under the same root, at the cost of matching unrelated siblings that share
// the root and extension.
type CompileRule struct {
	RootDir    string
	Extensions []string
}

// Reference is a binary reference entry: an absolute path plus the display
// name shown by the IDE (file name without extension).
type Reference struct {
	Path string
	Name string
}

// ProjectReference points at another unit's descriptor.
type ProjectReference struct {
	DescriptorPath string
	GUID           string
	Name           string
}

// PackageReference is an external analyzer package pulled in by name rather
// than by path.
type PackageReference struct {
	Name    string
	Version string
}

// ProjectDescriptor is the fully resolved model of one per-unit project file,
// ready to render. All derived lists are ordered and deduplicated so that
// rendering is byte-identical for equal input sets.
type ProjectDescriptor struct {
	Name              string
	GUID              string
	TargetFramework   string
	Compile           CompileRule
	Assets            []string
	References        []Reference
	ProjectReferences []ProjectReference
	Analyzers         []string
	AnalyzerPackage   *PackageReference
	Defines           []string
	LanguageVersion   string
	AllowUnsafe       bool
	RulesetPaths      []string
}

// SolutionEntry is one project listing in the solution descriptor.
type SolutionEntry struct {
	GUID string
	Name string
	Path string
}

// SolutionDescriptor is the resolved model of the solution file. All entries
// share one project type and one build configuration.
type SolutionDescriptor struct {
	ProjectName   string
	TypeGUID      string
	Configuration string
	Entries       []SolutionEntry
}

// SolutionConfiguration is the single build configuration every included
// project is listed under.
const SolutionConfiguration = "Debug|Any CPU"
