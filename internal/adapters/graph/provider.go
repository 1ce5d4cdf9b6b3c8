// Package graph implements the graph provider on top of a YAML snapshot file
// exported by the editor integration.
package graph

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/slnsync/internal/engine/respfile"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.GraphProvider = (*SnapshotProvider)(nil)

// SnapshotProvider reads the unit graph from a snapshot file. ListUnits
// re-reads the file on every call; the graph is never persisted across syncs.
// Path-resolution queries answer against the most recent load, loading the
// snapshot on demand when nothing has been loaded yet.
type SnapshotProvider struct {
	path string

	excluded     []string
	assets       []string
	sourceOwners map[string]string
	unitRoots    []unitRoot
}

type unitRoot struct {
	root string
	name string
}

// NewSnapshotProvider creates a provider for the snapshot at path.
func NewSnapshotProvider(path string) *SnapshotProvider {
	return &SnapshotProvider{path: path}
}

// ListUnits loads the snapshot and returns its units ordered by name. The
// predicate filters each unit's source file list.
func (p *SnapshotProvider) ListUnits(eligible func(path string) bool) ([]domain.CompilationUnit, error) {
	file, err := p.load()
	if err != nil {
		return nil, err
	}
	p.index(file)

	names := make([]string, 0, len(file.Units))
	for name := range file.Units {
		names = append(names, name)
	}
	sort.Strings(names)

	units := make([]domain.CompilationUnit, 0, len(names))
	for _, name := range names {
		dto := file.Units[name]

		var sources []string
		for _, src := range dto.Sources {
			if eligible == nil || eligible(src) {
				sources = append(sources, src)
			}
		}

		refs := make([]domain.InternedString, 0, len(dto.References))
		for _, ref := range dto.References {
			refs = append(refs, domain.NewInternedString(ref))
		}

		units = append(units, domain.CompilationUnit{
			Name:                  domain.NewInternedString(name),
			SourceFiles:           sources,
			References:            refs,
			PrecompiledReferences: dto.PrecompiledReferences,
			Defines:               dto.Defines,
			OutputPath:            dto.Output,
			Options: domain.CompilerOptions{
				LanguageVersion: dto.LangVersion,
				AllowUnsafe:     dto.Unsafe,
				RulesetPath:     dto.Ruleset,
				Analyzers:       dto.Analyzers,
				ResponseFiles:   dto.ResponseFiles,
				ApiCompat:       parseApiCompat(dto.ApiCompat),
			},
		})
	}

	return units, nil
}

// ListAllAssetPaths returns the asset paths from the most recent load.
func (p *SnapshotProvider) ListAllAssetPaths() ([]string, error) {
	if p.assets == nil {
		file, err := p.load()
		if err != nil {
			return nil, err
		}
		p.index(file)
	}
	return p.assets, nil
}

// UnitNameForPath resolves a path to its owning unit: an exact source match
// first, then the longest unit root prefix.
func (p *SnapshotProvider) UnitNameForPath(path string) string {
	p.ensureIndex()
	path = filepath.ToSlash(path)
	if name, ok := p.sourceOwners[path]; ok {
		return name
	}
	for _, ur := range p.unitRoots {
		if path == ur.root || strings.HasPrefix(path, ur.root+"/") {
			return ur.name
		}
	}
	return ""
}

// IsExcludedPath reports whether the path lives under an excluded prefix.
func (p *SnapshotProvider) IsExcludedPath(path string) bool {
	p.ensureIndex()
	path = filepath.ToSlash(path)
	for _, prefix := range p.excluded {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// ResolveResponseFile finds and parses the response file identified by id,
// searching the project root first and the system directories after.
func (p *SnapshotProvider) ResolveResponseFile(id, projectRoot string, systemDirs []string) (domain.ResponseFileData, error) {
	dirs := append([]string{projectRoot}, systemDirs...)
	for _, dir := range dirs {
		candidate := filepath.Join(dir, id)
		data, err := os.ReadFile(candidate) //nolint:gosec // Search dirs come from configuration
		if err != nil {
			continue
		}
		return respfile.Parse(string(data)), nil
	}
	return domain.ResponseFileData{}, zerr.With(zerr.Wrap(domain.ErrResponseFileNotFound, "failed to locate response file"), "response_file", id)
}

// ensureIndex builds the path-resolution lookups for queries made before the
// first full load. A load failure leaves the index empty; the next ListUnits
// call reports the error.
func (p *SnapshotProvider) ensureIndex() {
	if p.sourceOwners != nil {
		return
	}
	file, err := p.load()
	if err != nil {
		return
	}
	p.index(file)
}

func (p *SnapshotProvider) load() (*snapshotFile, error) {
	data, err := os.ReadFile(p.path) //nolint:gosec // Snapshot path comes from configuration
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read graph snapshot"), "path", p.path)
	}

	var file snapshotFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse graph snapshot"), "path", p.path)
	}
	return &file, nil
}

// index rebuilds the path-resolution lookups from a loaded snapshot.
func (p *SnapshotProvider) index(file *snapshotFile) {
	p.excluded = make([]string, 0, len(file.ExcludedPaths))
	for _, prefix := range file.ExcludedPaths {
		p.excluded = append(p.excluded, strings.TrimSuffix(filepath.ToSlash(prefix), "/"))
	}

	p.assets = file.Assets
	if p.assets == nil {
		p.assets = []string{}
	}

	p.sourceOwners = make(map[string]string)
	p.unitRoots = p.unitRoots[:0]
	for name, dto := range file.Units {
		for _, src := range dto.Sources {
			p.sourceOwners[filepath.ToSlash(src)] = name
		}
		if dto.Root != "" {
			p.unitRoots = append(p.unitRoots, unitRoot{
				root: strings.TrimSuffix(filepath.ToSlash(dto.Root), "/"),
				name: name,
			})
		}
	}
	// Longest prefix wins; ties resolve by name for determinism.
	sort.Slice(p.unitRoots, func(i, j int) bool {
		if len(p.unitRoots[i].root) != len(p.unitRoots[j].root) {
			return len(p.unitRoots[i].root) > len(p.unitRoots[j].root)
		}
		return p.unitRoots[i].name < p.unitRoots[j].name
	})
}

// parseApiCompat maps the snapshot's compatibility string onto the domain
// enum. Unknown values map to ApiCompatUnknown, which fails descriptor
// generation for the owning unit only.
func parseApiCompat(s string) domain.ApiCompat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "net48", "net_4_8":
		return domain.ApiCompatNet48
	case "netstandard", "net_standard":
		return domain.ApiCompatNetStandard
	case "netstandard2.1", "net_standard_2_1":
		return domain.ApiCompatNetStandard21
	default:
		return domain.ApiCompatUnknown
	}
}
