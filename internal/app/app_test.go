package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slnsync/internal/adapters/config"
	"go.trai.ch/slnsync/internal/adapters/graph"
	"go.trai.ch/slnsync/internal/adapters/telemetry"
	"go.trai.ch/slnsync/internal/app"
	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/slnsync/internal/core/ports/mocks"
	"go.trai.ch/slnsync/internal/engine/hooks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	store    *config.Store
	provider *mocks.MockGraphProvider
	writer   *mocks.MockArtifactWriter
	watcher  *mocks.MockWatcher

	factoryCalls []string
}

func newFixture(t *testing.T, ctrl *gomock.Controller, settingsYAML string) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "slnsync.yaml")
	require.NoError(t, os.WriteFile(path, []byte(settingsYAML), 0o600))
	store, err := config.NewStore(path)
	require.NoError(t, err)

	f := &fixture{
		store:    store,
		provider: mocks.NewMockGraphProvider(ctrl),
		writer:   mocks.NewMockArtifactWriter(ctrl),
		watcher:  mocks.NewMockWatcher(ctrl),
	}
	f.provider.EXPECT().IsExcludedPath(gomock.Any()).Return(false).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	factory := ports.ProviderFactory(func(snapshotPath string) ports.GraphProvider {
		f.factoryCalls = append(f.factoryCalls, snapshotPath)
		return f.provider
	})

	f.app = app.New(store, factory, f.writer, mocks.NewMockBuildVerifier(ctrl),
		telemetry.NewNoOpTracer(), log, hooks.NewChain(), f.watcher)
	return f
}

func TestApp_SyncUsesCurrentSettingsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, "projectName: Game\nprojectRoot: /work/game\n")

	units := []domain.CompilationUnit{{
		Name:        domain.NewInternedString("Core"),
		SourceFiles: []string{"Assets/Core/A.cs"},
		Options:     domain.CompilerOptions{ApiCompat: domain.ApiCompatNetStandard},
	}}
	f.provider.EXPECT().ListUnits(gomock.Any()).Return(units, nil)
	f.provider.EXPECT().ListAllAssetPaths().Return(nil, nil)
	f.provider.EXPECT().UnitNameForPath(gomock.Any()).Return("").AnyTimes()

	f.writer.EXPECT().WriteIfChanged(filepath.Join("/work/game", "Game.sln"), gomock.Any()).Return(true, nil)
	f.writer.EXPECT().WriteIfChanged(filepath.Join("/work/game", "Projects", "Core", "Core.csproj"), gomock.Any()).Return(true, nil)

	f.app.Sync(context.Background())

	require.Len(t, f.factoryCalls, 1)
	assert.Equal(t, filepath.Join("/work/game", "unitgraph.yaml"), f.factoryCalls[0])
}

func TestApp_CheckNeeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, "")

	assert.True(t, f.app.CheckNeeded([]string{"Assets/A.cs"}, nil))
	assert.True(t, f.app.CheckNeeded(nil, []string{"Library/x.dll"}))
	assert.False(t, f.app.CheckNeeded([]string{"README.md"}, nil))
}

func TestApp_CheckNeededHonorsSnapshotExclusions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	snapshot := `excludedPaths:
  - Packages/Hidden
units:
  Core:
    root: Assets/Core
    sources:
      - Assets/Core/A.cs
    apiCompat: netstandard
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "unitgraph.yaml"), []byte(snapshot), 0o600))

	settingsPath := filepath.Join(t.TempDir(), "slnsync.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("projectRoot: "+root+"\n"), 0o600))
	store, err := config.NewStore(settingsPath)
	require.NoError(t, err)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	factory := ports.ProviderFactory(func(path string) ports.GraphProvider {
		return graph.NewSnapshotProvider(path)
	})
	a := app.New(store, factory, mocks.NewMockArtifactWriter(ctrl), mocks.NewMockBuildVerifier(ctrl),
		telemetry.NewNoOpTracer(), log, hooks.NewChain(), mocks.NewMockWatcher(ctrl))

	// A change set living entirely under an excluded prefix is skippable even
	// though the extension is recognized.
	assert.False(t, a.CheckNeeded([]string{"Packages/Hidden/Secret.cs"}, nil))
	assert.True(t, a.CheckNeeded([]string{"Assets/Core/A.cs"}, nil))
}

func TestApp_SetSettingsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, "projectName: Before\n")
	require.Equal(t, "Before", f.store.Current().ProjectName)

	other := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("projectName: After\n"), 0o600))

	require.NoError(t, f.app.SetSettingsPath(other))
	assert.Equal(t, "After", f.store.Current().ProjectName)
}

func TestApp_SetSettingsPath_MissingFileYieldsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, "projectName: Custom\n")

	require.NoError(t, f.app.SetSettingsPath(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, "Project", f.store.Current().ProjectName)
}

func TestApp_WatchStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, "projectRoot: /work/game\n")

	// Initial full sync over an empty graph.
	f.provider.EXPECT().ListUnits(gomock.Any()).Return(nil, nil)
	f.provider.EXPECT().ListAllAssetPaths().Return(nil, nil)
	f.provider.EXPECT().UnitNameForPath(gomock.Any()).Return("").AnyTimes()
	f.writer.EXPECT().WriteIfChanged(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	events := make(chan string)
	f.watcher.EXPECT().Start(gomock.Any(), "/work/game").Return(nil)
	f.watcher.EXPECT().Events().Return((<-chan string)(events)).AnyTimes()
	f.watcher.EXPECT().Stop().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := f.app.Watch(ctx)
	assert.NoError(t, err)
}

func TestApp_WatchFailsWhenWatcherFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl, "projectRoot: /work/game\n")

	f.provider.EXPECT().ListUnits(gomock.Any()).Return(nil, nil)
	f.provider.EXPECT().ListAllAssetPaths().Return(nil, nil)
	f.provider.EXPECT().UnitNameForPath(gomock.Any()).Return("").AnyTimes()
	f.writer.EXPECT().WriteIfChanged(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	f.watcher.EXPECT().Start(gomock.Any(), "/work/game").Return(os.ErrPermission)

	err := f.app.Watch(context.Background())
	assert.Error(t, err)
}
