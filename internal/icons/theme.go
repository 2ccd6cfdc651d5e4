// Package icons resolves application icon names to image files by walking
// the freedesktop icon theme inheritance chain.
package icons

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackTheme is the universal fallback; every chain ends with it
const fallbackTheme = "hicolor"

// gtkSettingsKey names the active icon theme in the GTK3 settings file
const gtkSettingsKey = "gtk-icon-theme-name="

// BaseDirs returns the icon theme roots in search order: user icons first,
// then system, then system-local.
func BaseDirs(home string) []string {
	return []string{
		filepath.Join(home, ".icons"),
		"/usr/share/icons",
		"/usr/local/share/icons",
	}
}

// ActiveTheme reads the active icon theme from the GTK3 settings file under
// home. A missing file or key falls back to hicolor.
func ActiveTheme(home string) string {
	path := filepath.Join(home, ".config", "gtk-3.0", "settings.ini")
	data, err := os.ReadFile(path)
	if err != nil {
		return fallbackTheme
	}

	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, gtkSettingsKey) {
			if theme := strings.TrimSpace(line[len(gtkSettingsKey):]); theme != "" {
				return theme
			}
		}
	}
	return fallbackTheme
}

// BuildChain returns the ordered theme search chain for start: a
// breadth-first walk of the Inherits relation. The visited set makes the
// walk terminate on cyclic or diamond inheritance and keeps every theme to
// a single occurrence. The chain is never empty and always ends with
// hicolor.
func BuildChain(start string, baseDirs []string) []string {
	var chain []string
	visited := map[string]bool{}
	queue := []string{start}

	for len(queue) > 0 {
		theme := queue[0]
		queue = queue[1:]
		if visited[theme] {
			continue
		}
		visited[theme] = true
		chain = append(chain, theme)

		for _, parent := range themeParents(theme, baseDirs) {
			if !visited[parent] {
				queue = append(queue, parent)
			}
		}
	}

	if !visited[fallbackTheme] {
		chain = append(chain, fallbackTheme)
	}
	return chain
}

// themeParents reads the Inherits key from the first index.theme found for
// theme across the base directories.
func themeParents(theme string, baseDirs []string) []string {
	for _, dir := range baseDirs {
		data, err := os.ReadFile(filepath.Join(dir, theme, "index.theme"))
		if err != nil {
			continue
		}
		return parseInherits(string(data))
	}
	return nil
}

func parseInherits(index string) []string {
	for line := range strings.SplitSeq(index, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Inherits=") {
			continue
		}

		var parents []string
		for name := range strings.SplitSeq(line[len("Inherits="):], ",") {
			if name = strings.TrimSpace(name); name != "" {
				parents = append(parents, name)
			}
		}
		return parents
	}
	return nil
}
