package domain

import (
	"path/filepath"
	"strings"
)

// AssetFile is a non-source file that may be listed in a project descriptor.
// Ownership by a unit is derived from its path, never stored.
type AssetFile struct {
	Path      string
	Extension string
}

// NewAssetFile creates an AssetFile from a path, extracting its normalized
// (lowercase) extension.
func NewAssetFile(path string) AssetFile {
	return AssetFile{
		Path:      path,
		Extension: strings.ToLower(filepath.Ext(path)),
	}
}
