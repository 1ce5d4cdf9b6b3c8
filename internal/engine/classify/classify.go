// Package classify decides whether a file extension is a compilable source or
// a plain asset, and whether a path takes part in the sync at all.
package classify

import (
	"path/filepath"
	"strings"
)

// ScriptType is the classification of a recognized extension.
type ScriptType int

const (
	// TypeNone marks a recognized non-source asset.
	TypeNone ScriptType = iota
	// TypeSource marks a compilable source file.
	TypeSource
)

const (
	// BinaryReferenceExtension is always eligible: precompiled libraries feed
	// the reference lists even though they are never compiled.
	BinaryReferenceExtension = ".dll"
	// ManifestExtension is always eligible: unit manifests describe the graph
	// itself.
	ManifestExtension = ".asmdef"
)

// builtinTypes is the fixed classification table. Exactly one extension is a
// source; the rest are engine-domain assets.
var builtinTypes = map[string]ScriptType{
	".cs":       TypeSource,
	".shader":   TypeNone,
	".compute":  TypeNone,
	".cginc":    TypeNone,
	".hlsl":     TypeNone,
	".glslinc":  TypeNone,
	".raytrace": TypeNone,
	".template": TypeNone,
	".uxml":     TypeNone,
	".uss":      TypeNone,
	".json":     TypeNone,
	".xml":      TypeNone,
	".txt":      TypeNone,
}

// Classifier combines the builtin table with caller-supplied extra extensions
// and an exclusion predicate supplied by the graph provider.
type Classifier struct {
	extra    map[string]struct{}
	excluded func(path string) bool
}

// New creates a Classifier. Extra extensions widen eligibility only; they
// never reclassify a file as source. A nil excluded predicate excludes
// nothing.
func New(extraExtensions []string, excluded func(path string) bool) *Classifier {
	extra := make(map[string]struct{}, len(extraExtensions))
	for _, ext := range extraExtensions {
		extra[normalizeExt(ext)] = struct{}{}
	}
	if excluded == nil {
		excluded = func(string) bool { return false }
	}
	return &Classifier{extra: extra, excluded: excluded}
}

// Classify returns the classification for an extension. Anything outside the
// builtin source entry classifies as None.
func (c *Classifier) Classify(ext string) ScriptType {
	if t, ok := builtinTypes[normalizeExt(ext)]; ok {
		return t
	}
	return TypeNone
}

// IsRecognized reports whether the extension is known at all: builtin,
// caller-supplied, or one of the two always-eligible special cases.
func (c *Classifier) IsRecognized(ext string) bool {
	ext = normalizeExt(ext)
	if ext == BinaryReferenceExtension || ext == ManifestExtension {
		return true
	}
	if _, ok := builtinTypes[ext]; ok {
		return true
	}
	_, ok := c.extra[ext]
	return ok
}

// IsEligible reports whether the path participates in the sync: its extension
// is recognized and it does not live under an excluded location.
func (c *Classifier) IsEligible(path string) bool {
	if !c.IsRecognized(filepath.Ext(path)) {
		return false
	}
	return !c.excluded(path)
}

// IsSource reports whether the path is an eligible compilable source file.
func (c *Classifier) IsSource(path string) bool {
	return c.Classify(filepath.Ext(path)) == TypeSource && c.IsEligible(path)
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
