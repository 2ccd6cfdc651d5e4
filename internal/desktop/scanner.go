// Package desktop discovers launchable applications from freedesktop
// desktop entry files.
package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bragi/internal/models"
)

// DebugMode enables debug logging
var DebugMode = false

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if DebugMode {
		fmt.Fprintf(os.Stderr, "[SCANNER] "+format+"\n", args...)
	}
}

// Scanner discovers desktop entries from a fixed set of directories
type Scanner struct {
	stdDirs   []string
	extraDirs []string
}

// New creates a new Scanner. extraDirs are searched after the standard
// application directories.
func New(extraDirs []string) *Scanner {
	homeDir, _ := os.UserHomeDir()
	return &Scanner{
		stdDirs: []string{
			"/usr/share/applications",
			"/usr/local/share/applications",
			filepath.Join(homeDir, ".local", "share", "applications"),
		},
		extraDirs: extraDirs,
	}
}

// Dirs returns the application directories in fixed scan order: system,
// system-local, then the user's own entries, then any configured extras.
func (s *Scanner) Dirs() []string {
	return append(append([]string{}, s.stdDirs...), s.extraDirs...)
}

// Scan parses every desktop entry file under the scan directories and
// returns the accepted entries in discovery order. Missing directories and
// unreadable files are skipped silently. Entries are never de-duplicated:
// two files describing the same application both survive as independent
// records.
func (s *Scanner) Scan() ([]*models.Entry, error) {
	var entries []*models.Entry

	for _, dir := range s.Dirs() {
		debugLog("Scanning directory: %s", dir)
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !strings.HasSuffix(path, desktopSuffix) {
				return nil
			}

			if entry, ok := ParseFile(path); ok {
				debugLog("  accepted %s -> %s", entry.Name, entry.Exec)
				entries = append(entries, entry)
			}
			return nil
		})
	}

	debugLog("Scan found %d entries", len(entries))
	return entries, nil
}
