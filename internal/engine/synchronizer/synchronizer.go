// Package synchronizer orchestrates descriptor generation and write-if-changed
// persistence over one graph snapshot per sync call.
package synchronizer

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/slnsync/internal/engine/classify"
	"go.trai.ch/slnsync/internal/engine/hooks"
	"go.trai.ch/slnsync/internal/engine/projectgen"
	"go.trai.ch/slnsync/internal/engine/respfile"
	"go.trai.ch/slnsync/internal/engine/solutiongen"
	"go.trai.ch/zerr"
)

// Synchronizer renders and writes the solution plus project descriptors.
// Calls are synchronous and single-threaded; callers must not run two syncs
// against the same project root concurrently. No error escapes Sync or
// SyncIfNeeded; every failure surfaces through the logger.
type Synchronizer struct {
	settings   domain.Settings
	provider   ports.GraphProvider
	writer     ports.ArtifactWriter
	verifier   ports.BuildVerifier
	tracer     ports.Tracer
	log        ports.Logger
	hooks      *hooks.Chain
	classifier *classify.Classifier
	builder    *projectgen.Builder
}

// New creates a Synchronizer for one settings snapshot.
func New(
	settings domain.Settings,
	provider ports.GraphProvider,
	writer ports.ArtifactWriter,
	verifier ports.BuildVerifier,
	tracer ports.Tracer,
	log ports.Logger,
	chain *hooks.Chain,
) *Synchronizer {
	classifier := classify.New(settings.ExtraExtensions, provider.IsExcludedPath)
	return &Synchronizer{
		settings:   settings,
		provider:   provider,
		writer:     writer,
		verifier:   verifier,
		tracer:     tracer,
		log:        log,
		hooks:      chain,
		classifier: classifier,
		builder:    projectgen.NewBuilder(settings, classifier),
	}
}

// snapshot is the unit graph plus the derived asset-ownership index for one
// sync call. It is discarded when the call returns.
type snapshot struct {
	graph  *domain.Graph
	assets map[string][]domain.AssetFile
}

// Sync unconditionally regenerates the solution and every source-bearing
// unit's descriptor, then triggers the external build verification.
func (s *Synchronizer) Sync(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "sync")
	defer span.End()

	snap, ok := s.takeSnapshot()
	if !ok {
		return
	}

	written := 0
	if s.writeSolution(ctx, snap) {
		written++
	}
	units := snap.graph.Units()
	for i := range units {
		unit := &units[i]
		if !snap.graph.HasSources(unit.Name) {
			continue
		}
		if s.writeProject(ctx, snap, unit) {
			written++
		}
	}
	span.SetAttribute("artifacts_written", written)

	s.verify(ctx)
}

// SyncIfNeeded evaluates the reported change set and, unless it is skippable,
// re-renders the solution plus only the descriptors of implicated units.
// Descriptors of all other units are left untouched on disk even if a full
// rebuild would render them differently. It reports whether any artifact was
// written.
func (s *Synchronizer) SyncIfNeeded(ctx context.Context, affected, reimported []string) bool {
	if !s.SyncNeeded(affected, reimported) {
		return false
	}

	ctx, span := s.tracer.Start(ctx, "sync-if-needed")
	defer span.End()

	snap, ok := s.takeSnapshot()
	if !ok {
		return false
	}

	implicated := s.implicatedUnits(affected, reimported)

	written := 0
	if s.writeSolution(ctx, snap) {
		written++
	}
	units := snap.graph.Units()
	for i := range units {
		unit := &units[i]
		if !snap.graph.HasSources(unit.Name) {
			continue
		}
		if _, ok := implicated[unit.Name.String()]; !ok {
			continue
		}
		if s.writeProject(ctx, snap, unit) {
			written++
		}
	}
	span.SetAttribute("artifacts_written", written)

	return written > 0
}

// SyncNeeded reports whether a change set warrants any work: at least one
// affected path must be eligible, or at least one reimported path must carry
// an always-resync extension.
func (s *Synchronizer) SyncNeeded(affected, reimported []string) bool {
	for _, path := range affected {
		if s.classifier.IsEligible(path) {
			return true
		}
	}
	for _, path := range reimported {
		switch strings.ToLower(filepath.Ext(path)) {
		case classify.BinaryReferenceExtension, classify.ManifestExtension:
			return true
		}
	}
	return false
}

// implicatedUnits maps the change set to the names of units that must be
// rebuilt, stripping the binary-output suffix so that a changed artifact
// resolves back to its producing unit.
func (s *Synchronizer) implicatedUnits(affected, reimported []string) map[string]struct{} {
	implicated := make(map[string]struct{})
	for _, path := range append(append([]string{}, affected...), reimported...) {
		trimmed := strings.TrimSuffix(path, classify.BinaryReferenceExtension)
		if name := s.provider.UnitNameForPath(trimmed); name != "" {
			implicated[name] = struct{}{}
		}
	}
	return implicated
}

// takeSnapshot pulls a fresh unit graph and asset list from the provider and
// builds the global asset-ownership index.
func (s *Synchronizer) takeSnapshot() (*snapshot, bool) {
	units, err := s.provider.ListUnits(s.classifier.IsEligible)
	if err != nil {
		s.log.Error(zerr.Wrap(err, "failed to list compilation units"))
		return nil, false
	}
	graph := domain.NewGraph(units, s.classifier.IsSource)

	paths, err := s.provider.ListAllAssetPaths()
	if err != nil {
		s.log.Error(zerr.Wrap(err, "failed to list asset paths"))
		return nil, false
	}

	assets := make(map[string][]domain.AssetFile)
	for _, path := range paths {
		if !s.classifier.IsEligible(path) {
			continue
		}
		name := s.provider.UnitNameForPath(path)
		if name == "" {
			continue
		}
		assets[name] = append(assets[name], domain.NewAssetFile(path))
	}

	return &snapshot{graph: graph, assets: assets}, true
}

func (s *Synchronizer) writeSolution(ctx context.Context, snap *snapshot) bool {
	content := solutiongen.Render(solutiongen.Build(s.settings, snap.graph))
	return s.writeArtifact(ctx, hooks.KindSolution, s.settings.SolutionPath(), content)
}

func (s *Synchronizer) writeProject(ctx context.Context, snap *snapshot, unit *domain.CompilationUnit) bool {
	resp := respfile.Resolve(unit, s.provider, s.settings.ProjectRoot, s.settings.SystemResponseDirs, s.log)

	desc, err := s.builder.Build(snap.graph, unit, resp, snap.assets[unit.Name.String()])
	if err != nil {
		// Fatal for this unit's descriptor only; the rest of the sync
		// proceeds and the stale file stays on disk.
		s.log.Error(zerr.Wrap(err, "failed to build project descriptor"))
		return false
	}

	return s.writeArtifact(ctx, hooks.KindProject, s.settings.DescriptorPath(desc.Name), projectgen.Render(desc))
}

func (s *Synchronizer) writeArtifact(ctx context.Context, kind hooks.Kind, path, content string) bool {
	_, span := s.tracer.Start(ctx, "write "+filepath.Base(path))
	defer span.End()

	content = s.hooks.Apply(kind, path, content)

	wrote, err := s.writer.WriteIfChanged(path, content)
	if err != nil {
		// Not retried; the sync continues with remaining artifacts.
		span.RecordError(err)
		s.log.Error(zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path))
		return false
	}
	if wrote {
		s.log.Info("wrote " + path)
	}
	return wrote
}

func (s *Synchronizer) verify(ctx context.Context) {
	if len(s.settings.VerifyCommand) == 0 {
		return
	}
	if err := s.verifier.Verify(ctx, s.settings.ProjectRoot, s.settings.VerifyCommand); err != nil {
		s.log.Error(zerr.Wrap(err, "build verification failed"))
	}
}
