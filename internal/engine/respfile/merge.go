package respfile

import (
	"path/filepath"
	"strings"

	"go.trai.ch/slnsync/internal/core/domain"
	"go.trai.ch/slnsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolve parses every response file listed on the unit. Files that cannot be
// resolved or that carry parse errors are reported to the logger and skipped;
// resolution of the remaining files proceeds.
func Resolve(unit *domain.CompilationUnit, provider ports.GraphProvider, projectRoot string, systemDirs []string, log ports.Logger) []domain.ResponseFileData {
	out := make([]domain.ResponseFileData, 0, len(unit.Options.ResponseFiles))
	for _, id := range unit.Options.ResponseFiles {
		data, err := provider.ResolveResponseFile(id, projectRoot, systemDirs)
		if err != nil {
			log.Error(zerr.With(zerr.With(zerr.Wrap(err, "failed to resolve response file"),
				"unit_name", unit.Name.String()), "response_file", id))
			continue
		}
		if !data.Valid() {
			for _, msg := range data.Errors {
				log.Warn("response file " + id + ": " + msg)
			}
			continue
		}
		out = append(out, data)
	}
	return out
}

// MergeOtherArguments flattens the free-form flags of every file into one
// lookup keyed by flag name. Every value is preserved; repeated flags such as
// repeated analyzer paths accumulate in order.
func MergeOtherArguments(datas []domain.ResponseFileData) map[string][]string {
	merged := make(map[string][]string)
	for _, data := range datas {
		for name, values := range data.OtherArguments {
			merged[name] = append(merged[name], values...)
		}
	}
	return merged
}

// LanguageVersion is the first non-empty langversion flag across response
// files, falling back to the unit's own language version.
func LanguageVersion(merged map[string][]string, fallback string) string {
	for _, v := range merged["langversion"] {
		if v != "" {
			return v
		}
	}
	return fallback
}

// RulesetPaths is the unit's own ruleset path (if any) followed by every
// ruleset flag value, deduplicated keeping first occurrence, each made
// absolute against the project root.
func RulesetPaths(unitRuleset string, merged map[string][]string, projectRoot string) []string {
	var paths []string
	if unitRuleset != "" {
		paths = append(paths, unitRuleset)
	}
	paths = append(paths, merged["ruleset"]...)

	out := dedupeKeepFirst(paths)
	for i, p := range out {
		out[i] = Absolute(p, projectRoot)
	}
	return out
}

// AnalyzerPaths is every analyzer flag value (each possibly a ';'-delimited
// list) followed by the unit's own analyzer libraries, deduplicated, each made
// absolute against the project root.
func AnalyzerPaths(merged map[string][]string, unitAnalyzers []string, projectRoot string) []string {
	var paths []string
	for _, key := range []string{"analyzer", "a"} {
		for _, v := range merged[key] {
			for _, p := range strings.Split(v, ";") {
				if p != "" {
					paths = append(paths, p)
				}
			}
		}
	}
	paths = append(paths, unitAnalyzers...)

	out := dedupeKeepFirst(paths)
	for i, p := range out {
		out[i] = Absolute(p, projectRoot)
	}
	return out
}

// AllowUnsafe is the unit's own flag ORed with every response file's unsafe
// flag.
func AllowUnsafe(unitUnsafe bool, datas []domain.ResponseFileData) bool {
	if unitUnsafe {
		return true
	}
	for _, data := range datas {
		if data.Unsafe {
			return true
		}
	}
	return false
}

// Absolute resolves path against root unless it is already absolute.
func Absolute(path, root string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func dedupeKeepFirst(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
