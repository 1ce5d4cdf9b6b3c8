// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/slnsync/internal/core/domain"

// GraphProvider supplies the compilation-unit graph and asset list. The graph
// is reconstructed fresh from the provider at the start of every sync; nothing
// from a previous snapshot is reused.
//
//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type GraphProvider interface {
	// ListUnits returns the current unit graph. The predicate decides which
	// source files of a unit take part in the sync at all.
	ListUnits(eligible func(path string) bool) ([]domain.CompilationUnit, error)

	// ListAllAssetPaths returns every asset path known to the provider.
	ListAllAssetPaths() ([]string, error)

	// UnitNameForPath resolves a path to the name of the unit owning it, or ""
	// if no unit owns it.
	UnitNameForPath(path string) string

	// IsExcludedPath reports whether the path lives under an internalized or
	// otherwise excluded location.
	IsExcludedPath(path string) bool

	// ResolveResponseFile parses the response file identified by id, searching
	// the project root first and then the system directories.
	ResolveResponseFile(id, projectRoot string, systemDirs []string) (domain.ResponseFileData, error)
}
