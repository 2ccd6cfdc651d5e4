package icons

import (
	"os"
	"path/filepath"
	"strings"

	"bragi/internal/models"
)

// iconSuffix is the only image format looked up
const iconSuffix = ".png"

// sizePriority is the fixed size bucket order. It does not adapt to
// display scale.
var sizePriority = []string{"32x32", "48x48", "24x24", "64x64", "16x16", "scalable"}

// pixmapsDir is the last-resort lookup location for bare icon names.
// Package variable so tests can point it at a fixture.
var pixmapsDir = "/usr/share/pixmaps"

// Resolver turns icon identifiers into image file paths
type Resolver struct {
	chain    []string
	baseDirs []string
}

// NewResolver builds a resolver for the given start theme. The inheritance
// chain is built once here; resolution never re-reads theme indexes.
func NewResolver(startTheme string, baseDirs []string) *Resolver {
	return &Resolver{
		chain:    BuildChain(startTheme, baseDirs),
		baseDirs: baseDirs,
	}
}

// Chain returns the theme search chain, ending in hicolor
func (r *Resolver) Chain() []string {
	return r.chain
}

// Resolve maps an icon identifier to an existing image file path, or ""
// when nothing matches. Absolute identifiers are taken as-is (with the
// image suffix appended when missing); bare names are searched across the
// theme chain, base directories and size buckets, then the pixmaps dir.
func (r *Resolver) Resolve(identifier string) string {
	if identifier == "" {
		return ""
	}

	if filepath.IsAbs(identifier) {
		if strings.HasSuffix(identifier, iconSuffix) && fileExists(identifier) {
			return identifier
		}
		if withSuffix := identifier + iconSuffix; fileExists(withSuffix) {
			return withSuffix
		}
		return ""
	}

	for _, theme := range r.chain {
		for _, base := range r.baseDirs {
			for _, size := range sizePriority {
				path := filepath.Join(base, theme, size, "apps", identifier+iconSuffix)
				if fileExists(path) {
					return path
				}
			}
		}
	}

	if path := filepath.Join(pixmapsDir, identifier+iconSuffix); fileExists(path) {
		return path
	}
	return ""
}

// ResolveEntry resolves an entry's icon at most once, memoizing the outcome
// on the entry. Repeated calls never touch the filesystem again, including
// after a failed lookup.
func (r *Resolver) ResolveEntry(e *models.Entry) string {
	if e.IconState == models.IconResolved {
		return e.IconPath
	}
	e.SetIconPath(r.Resolve(e.Icon))
	return e.IconPath
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
