package desktop

import (
	"os"
	"strings"

	"bragi/internal/models"
)

// fieldCodes are the desktop entry Exec placeholders. No arguments are ever
// supplied at launch, so every occurrence is stripped.
var fieldCodes = []string{"%f", "%F", "%u", "%U", "%d", "%D", "%n", "%N", "%i", "%c", "%k"}

// desktopSuffix is the file name suffix of desktop entry files
const desktopSuffix = ".desktop"

// CleanExec strips field codes from an Exec value and trims surrounding
// whitespace. Interior spacing is left alone.
func CleanExec(exec string) string {
	for _, code := range fieldCodes {
		exec = strings.ReplaceAll(exec, code, "")
	}
	return strings.TrimSpace(exec)
}

// ParseFile parses one desktop entry file. The boolean is false when the file
// is unreadable or the entry is rejected (hidden, wrong type, or missing
// required fields); rejection is always total for the file.
func ParseFile(path string) (*models.Entry, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	entry := &models.Entry{Source: path}
	rejected := false
	inDesktopEntry := false

	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		// Any section header toggles interest; only [Desktop Entry] opens it
		if len(line) > 2 && line[0] == '[' && line[len(line)-1] == ']' {
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}

		if !inDesktopEntry {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "Name":
			if entry.Name == "" {
				entry.Name = value
			}
		case "Exec":
			if entry.Exec == "" {
				entry.Exec = CleanExec(value)
			}
		case "Comment":
			if entry.Comment == "" {
				entry.Comment = value
			}
		case "Icon":
			if entry.Icon == "" {
				entry.Icon = value
			}
		case "NoDisplay":
			if strings.EqualFold(value, "true") {
				rejected = true
			}
		case "Type":
			if value != "Application" {
				rejected = true
			}
		}
	}

	if rejected || entry.Name == "" || entry.Exec == "" {
		return nil, false
	}
	return entry, true
}
