package graph

// snapshotFile is the on-disk shape of a unit-graph snapshot exported by the
// editor integration.
type snapshotFile struct {
	Version       string             `yaml:"version"`
	ExcludedPaths []string           `yaml:"excludedPaths"`
	Units         map[string]unitDTO `yaml:"units"`
	Assets        []string           `yaml:"assets"`
}

// unitDTO is one compilation unit definition in the snapshot.
type unitDTO struct {
	Root                  string   `yaml:"root"`
	Sources               []string `yaml:"sources"`
	References            []string `yaml:"references"`
	PrecompiledReferences []string `yaml:"precompiledReferences"`
	Defines               []string `yaml:"defines"`
	Output                string   `yaml:"output"`
	ApiCompat             string   `yaml:"apiCompat"`
	LangVersion           string   `yaml:"langVersion"`
	Unsafe                bool     `yaml:"unsafe"`
	Ruleset               string   `yaml:"ruleset"`
	Analyzers             []string `yaml:"analyzers"`
	ResponseFiles         []string `yaml:"responseFiles"`
}
