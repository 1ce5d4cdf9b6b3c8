// Package config loads the synchronizer settings.
package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store is the process-scoped settings holder. Settings change only through
// an explicit Reload; there is no implicit first-access cache.
type Store struct {
	mu      sync.RWMutex
	path    string
	current domain.Settings
}

// NewStore loads the settings file at path. A missing file yields defaults; a
// malformed file is an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetPath points the store at a different settings file. The change takes
// effect on the next Reload.
func (s *Store) SetPath(path string) {
	s.mu.Lock()
	s.path = path
	s.mu.Unlock()
}

// Current returns the active settings snapshot.
func (s *Store) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload re-reads the settings file and the environment overlay.
func (s *Store) Reload() error {
	s.mu.RLock()
	path := s.path
	s.mu.RUnlock()

	settings, err := load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = settings
	s.mu.Unlock()
	return nil
}

// fileSettings is the YAML shape of the settings file.
type fileSettings struct {
	ProjectName            string   `yaml:"projectName"`
	ProjectRoot            string   `yaml:"projectRoot"`
	ProjectsDir            string   `yaml:"projectsDir"`
	GraphSnapshot          string   `yaml:"graphSnapshot"`
	PrimarySourceDir       string   `yaml:"primarySourceDir"`
	ExtraExtensions        []string `yaml:"extraExtensions"`
	ExtraDefines           []string `yaml:"extraDefines"`
	IncludeAnalyzerPackage bool     `yaml:"includeAnalyzerPackage"`
	AnalyzerPackageName    string   `yaml:"analyzerPackageName"`
	AnalyzerPackageVersion string   `yaml:"analyzerPackageVersion"`
	SystemResponseDirs     []string `yaml:"systemResponseDirs"`
	VerifyCommand          []string `yaml:"verifyCommand"`
	DebounceMillis         int      `yaml:"debounceMillis"`
}

func load(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(path) //nolint:gosec // Settings path comes from the CLI flag
	switch {
	case err == nil:
		var file fileSettings
		if err := yaml.Unmarshal(data, &file); err != nil {
			return settings, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
		}
		apply(&settings, file)
	case errors.Is(err, iofs.ErrNotExist):
		// Defaults apply.
	default:
		return settings, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	// Environment variables win over the file. godotenv fills the environment
	// from .env without overriding variables already set.
	_ = godotenv.Load()
	applyEnv(&settings)

	return settings, nil
}

func apply(settings *domain.Settings, file fileSettings) {
	if file.ProjectName != "" {
		settings.ProjectName = file.ProjectName
	}
	if file.ProjectRoot != "" {
		settings.ProjectRoot = file.ProjectRoot
	}
	if file.ProjectsDir != "" {
		settings.ProjectsDir = file.ProjectsDir
	}
	if file.GraphSnapshot != "" {
		settings.GraphSnapshot = file.GraphSnapshot
	}
	if file.PrimarySourceDir != "" {
		settings.PrimarySourceDir = file.PrimarySourceDir
	}
	if file.AnalyzerPackageName != "" {
		settings.AnalyzerPackageName = file.AnalyzerPackageName
	}
	if file.AnalyzerPackageVersion != "" {
		settings.AnalyzerPackageVersion = file.AnalyzerPackageVersion
	}
	if file.DebounceMillis > 0 {
		settings.DebounceMillis = file.DebounceMillis
	}
	settings.ExtraExtensions = file.ExtraExtensions
	settings.ExtraDefines = file.ExtraDefines
	settings.IncludeAnalyzerPackage = file.IncludeAnalyzerPackage
	settings.SystemResponseDirs = file.SystemResponseDirs
	settings.VerifyCommand = file.VerifyCommand
}

func applyEnv(settings *domain.Settings) {
	if v := os.Getenv("SLNSYNC_PROJECT_NAME"); v != "" {
		settings.ProjectName = v
	}
	if v := os.Getenv("SLNSYNC_PROJECT_ROOT"); v != "" {
		settings.ProjectRoot = v
	}
	if v := os.Getenv("SLNSYNC_GRAPH_SNAPSHOT"); v != "" {
		settings.GraphSnapshot = v
	}
	if v := os.Getenv("SLNSYNC_DEBOUNCE_MILLIS"); v != "" {
		if millis, err := strconv.Atoi(v); err == nil && millis > 0 {
			settings.DebounceMillis = millis
		}
	}
}
