// Package domain contains the core domain models for the project synchronizer.
package domain

import "go.trai.ch/zerr"

// ApiCompat identifies the API compatibility level a compilation unit is built
// against. It decides which target framework string the project descriptor
// advertises.
type ApiCompat int

const (
	// ApiCompatUnknown is the zero value and is never valid.
	ApiCompatUnknown ApiCompat = iota
	// ApiCompatNet48 targets the legacy full framework tier.
	ApiCompatNet48
	// ApiCompatNetStandard targets the default .NET Standard tier.
	ApiCompatNetStandard
	// ApiCompatNetStandard21 targets .NET Standard 2.1 explicitly.
	ApiCompatNetStandard21
)

// TargetFramework maps the compatibility level to the framework string
// rendered into the project descriptor. An unrecognized level is a
// configuration error for the owning unit.
func (a ApiCompat) TargetFramework() (string, error) {
	switch a {
	case ApiCompatNet48:
		return "v4.7.1", nil
	case ApiCompatNetStandard, ApiCompatNetStandard21:
		return "netstandard2.1", nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnsupportedApiCompat, "no target framework mapping"), "level", int(a))
	}
}

// CompilerOptions carries the per-unit compiler configuration supplied by the
// graph provider.
type CompilerOptions struct {
	LanguageVersion string
	AllowUnsafe     bool
	RulesetPath     string
	Analyzers       []string
	ResponseFiles   []string
	ApiCompat       ApiCompat
}

// CompilationUnit is a named group of source files compiled together, with its
// own references and compiler options. Unit names are unique within a graph
// snapshot.
type CompilationUnit struct {
	Name                  InternedString
	SourceFiles           []string
	References            []InternedString
	PrecompiledReferences []string
	Defines               []string
	OutputPath            string
	Options               CompilerOptions
}
