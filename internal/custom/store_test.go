package custom

import (
	"os"
	"path/filepath"
	"testing"
)

func storeAt(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "entries.yaml"))
}

func TestLoadMissingFile(t *testing.T) {
	s := storeAt(t)

	defs, err := s.Load()
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(defs) != 0 {
		t.Errorf("expected empty set, got %d", len(defs))
	}
}

func TestAddAndLoad(t *testing.T) {
	s := storeAt(t)

	def := Definition{Name: "Scratchpad", Exec: "kitty --class scratch", Icon: "utilities-terminal"}
	if err := s.Add(def); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	defs, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Name != "Scratchpad" || defs[0].Exec != "kitty --class scratch" {
		t.Errorf("unexpected definition %+v", defs[0])
	}
}

func TestAddDuplicateName(t *testing.T) {
	s := storeAt(t)

	if err := s.Add(Definition{Name: "Foo", Exec: "foo"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(Definition{Name: "foo", Exec: "other"}); err == nil {
		t.Error("duplicate name (case-insensitive) should be rejected")
	}
}

func TestAddValidation(t *testing.T) {
	s := storeAt(t)

	if err := s.Add(Definition{Exec: "foo"}); err == nil {
		t.Error("missing name should be rejected")
	}
	if err := s.Add(Definition{Name: "Foo"}); err == nil {
		t.Error("missing exec should be rejected")
	}
	if err := s.Add(Definition{Name: "  ", Exec: "  "}); err == nil {
		t.Error("whitespace-only fields should be rejected")
	}
}

func TestEntries(t *testing.T) {
	s := storeAt(t)

	if err := s.Add(Definition{Name: "Foo", Exec: "foo", Comment: "a tool"}); err != nil {
		t.Fatal(err)
	}

	entries := s.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Name != "Foo" || e.Exec != "foo" || e.Comment != "a tool" {
		t.Errorf("unexpected entry %+v", e)
	}
	if !e.Custom {
		t.Error("entries from the store must be marked custom")
	}
	if e.Source != s.path {
		t.Errorf("Source = %q, want store path", e.Source)
	}
}

func TestEntriesSkipsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.yaml")
	content := "entries:\n  - name: Valid\n    exec: valid\n  - name: NoExec\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	entries := New(path).Entries()
	if len(entries) != 1 || entries[0].Name != "Valid" {
		t.Errorf("invalid definitions should be skipped, got %d entries", len(entries))
	}
}
