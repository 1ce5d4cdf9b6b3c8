package domain

import "path/filepath"

// Settings is the explicit synchronizer configuration. It is passed into the
// sync engine at construction; there is no ambient preference store.
type Settings struct {
	// ProjectName names the solution file and seeds project identifiers.
	ProjectName string
	// ProjectRoot is the directory all artifacts are written under.
	ProjectRoot string
	// ProjectsDir is the subdirectory holding per-unit descriptor folders.
	ProjectsDir string
	// GraphSnapshot is the unit-graph snapshot file, relative to ProjectRoot
	// unless absolute.
	GraphSnapshot string
	// PrimarySourceDir is the source tree whose units always receive the
	// analyzer package reference.
	PrimarySourceDir string
	// ExtraExtensions widens the set of recognized asset extensions.
	ExtraExtensions []string
	// ExtraDefines are the ambient build-setting defines appended to every
	// unit's define list.
	ExtraDefines []string
	// IncludeAnalyzerPackage forces the analyzer package reference onto every
	// unit regardless of its source root.
	IncludeAnalyzerPackage bool
	// AnalyzerPackageName and AnalyzerPackageVersion identify the external
	// analyzer package reference.
	AnalyzerPackageName    string
	AnalyzerPackageVersion string
	// SystemResponseDirs are searched for response files after the project
	// root.
	SystemResponseDirs []string
	// VerifyCommand, when non-empty, is executed after a full sync completes.
	VerifyCommand []string
	// DebounceMillis is the watch-mode coalescing window.
	DebounceMillis int
}

// DefaultSettings returns the settings used when no configuration file is
// present.
func DefaultSettings() Settings {
	return Settings{
		ProjectName:            "Project",
		ProjectRoot:            ".",
		ProjectsDir:            "Projects",
		GraphSnapshot:          "unitgraph.yaml",
		PrimarySourceDir:       "Assets",
		AnalyzerPackageName:    "Microsoft.Unity.Analyzers",
		AnalyzerPackageVersion: "1.19.0",
		DebounceMillis:         250,
	}
}

// GraphSnapshotPath is the resolved location of the unit-graph snapshot.
func (s Settings) GraphSnapshotPath() string {
	if filepath.IsAbs(s.GraphSnapshot) {
		return s.GraphSnapshot
	}
	return filepath.Join(s.ProjectRoot, s.GraphSnapshot)
}

// SolutionPath is the on-disk location of the solution descriptor.
func (s Settings) SolutionPath() string {
	return filepath.Join(s.ProjectRoot, s.ProjectName+".sln")
}

// DescriptorPath is the on-disk location of a unit's project descriptor.
func (s Settings) DescriptorPath(unitName string) string {
	return filepath.Join(s.ProjectRoot, s.ProjectsDir, unitName, unitName+".csproj")
}

// DescriptorRelPath is the descriptor path relative to the project root, in
// slash form, as listed by the solution descriptor.
func (s Settings) DescriptorRelPath(unitName string) string {
	return filepath.ToSlash(filepath.Join(s.ProjectsDir, unitName, unitName+".csproj"))
}
