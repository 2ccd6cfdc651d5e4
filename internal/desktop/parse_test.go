package desktop

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEntry(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCleanExec(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"gimp", "gimp"},
		{"gimp %U", "gimp"},
		{"%f myapp %U", "myapp"},
		{"foo %U --flag", "foo  --flag"}, // interior spacing is not collapsed
		{"firefox %u", "firefox"},
		{"env FOO=1 app %F %i %c %k", "env FOO=1 app"},
		{"   spaced   ", "spaced"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanExec(tt.input); got != tt.want {
			t.Errorf("CleanExec(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseFileBasic(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "gimp.desktop", `[Desktop Entry]
Name=GIMP
Comment=Image editor
Exec=gimp %U
Icon=gimp
Type=Application
`)

	entry, ok := ParseFile(path)
	if !ok {
		t.Fatal("valid entry should be accepted")
	}
	if entry.Name != "GIMP" {
		t.Errorf("Name = %q", entry.Name)
	}
	if entry.Exec != "gimp" {
		t.Errorf("Exec = %q, field codes should be stripped", entry.Exec)
	}
	if entry.Comment != "Image editor" {
		t.Errorf("Comment = %q", entry.Comment)
	}
	if entry.Icon != "gimp" {
		t.Errorf("Icon = %q", entry.Icon)
	}
	if entry.Source != path {
		t.Errorf("Source = %q, want %q", entry.Source, path)
	}
}

func TestParseFileRejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			"no display",
			"[Desktop Entry]\nName=Hidden\nExec=hidden\nNoDisplay=true\n",
		},
		{
			"no display sticky before fields",
			"[Desktop Entry]\nNoDisplay=true\nName=Hidden\nExec=hidden\n",
		},
		{
			"wrong type",
			"[Desktop Entry]\nName=Link\nExec=link\nType=Link\n",
		},
		{
			"missing name",
			"[Desktop Entry]\nExec=foo\n",
		},
		{
			"missing exec",
			"[Desktop Entry]\nName=Foo\n",
		},
		{
			"exec only field codes",
			"[Desktop Entry]\nName=Foo\nExec=%U %F\n",
		},
		{
			"fields outside desktop entry section",
			"[Other Section]\nName=Foo\nExec=foo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeEntry(t, dir, "app.desktop", tt.content)
			if _, ok := ParseFile(path); ok {
				t.Error("entry should be rejected")
			}
		})
	}
}

func TestParseFileSectionGate(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "app.desktop", `[Desktop Entry]
Name=Real
[Desktop Action new-window]
Name=New Window
Exec=notthis --new-window
[Desktop Entry]
Exec=real %f
`)

	entry, ok := ParseFile(path)
	if !ok {
		t.Fatal("entry should be accepted")
	}
	if entry.Name != "Real" {
		t.Errorf("Name = %q, action section must not override", entry.Name)
	}
	if entry.Exec != "real" {
		t.Errorf("Exec = %q, should come from the reopened main section", entry.Exec)
	}
}

func TestParseFileFirstValueWins(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "app.desktop", `[Desktop Entry]
Name=First
Name=Second
Exec=first
Exec=second
Type=Application
`)

	entry, ok := ParseFile(path)
	if !ok {
		t.Fatal("entry should be accepted")
	}
	if entry.Name != "First" || entry.Exec != "first" {
		t.Errorf("got Name=%q Exec=%q, first occurrence should win", entry.Name, entry.Exec)
	}
}

func TestParseFileCommentsAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := writeEntry(t, dir, "app.desktop", `# generated by hand

[Desktop Entry]
# display name
Name=Foo

Exec=foo
`)

	entry, ok := ParseFile(path)
	if !ok {
		t.Fatal("entry should be accepted")
	}
	if entry.Name != "Foo" || entry.Exec != "foo" {
		t.Errorf("got Name=%q Exec=%q", entry.Name, entry.Exec)
	}
}

func TestParseFileUnreadable(t *testing.T) {
	if _, ok := ParseFile(filepath.Join(t.TempDir(), "missing.desktop")); ok {
		t.Error("unreadable file should be skipped")
	}
}
