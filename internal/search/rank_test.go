package search

import (
	"testing"

	"bragi/internal/models"
)

func entrySet(names ...string) []*models.Entry {
	entries := make([]*models.Entry, len(names))
	for i, n := range names {
		entries[i] = &models.Entry{Name: n, Exec: "x"}
	}
	return entries
}

func TestMatchScoring(t *testing.T) {
	tests := []struct {
		name  string
		query string
		score int
		ok    bool
	}{
		// 4 matches, word start on 'g', three consecutive runs
		{"gimp", "GIMP", 10 + 15 + 10 + 5 + 10 + 5 + 10 + 5, true},
		{"GIMP", "gimp", 70, true},
		// single character at word start
		{"gimp", "g", 25, true},
		// single character mid-word
		{"gimp", "i", 10, true},
		// word start after a space (greedy hits the 'i' of Image first)
		{"GNU Image", "i", 10 + 15, true},
		// subsequence, non-contiguous
		{"Files", "fls", 10 + 15 + 10 + 10, true},
		// not a subsequence
		{"GIMP", "xyz", 0, false},
		// order matters
		{"GIMP", "pg", 0, false},
		// query longer than name
		{"vi", "vim", 0, false},
		// empty query always matches
		{"GIMP", "", 0, true},
	}

	for _, tt := range tests {
		score, ok := Match(tt.name, tt.query)
		if ok != tt.ok {
			t.Errorf("Match(%q, %q) ok = %v, want %v", tt.name, tt.query, ok, tt.ok)
			continue
		}
		if ok && score != tt.score {
			t.Errorf("Match(%q, %q) score = %d, want %d", tt.name, tt.query, score, tt.score)
		}
	}
}

func TestMatchSubsequenceProperty(t *testing.T) {
	// Acceptance must coincide exactly with case-insensitive ordered
	// subsequence containment.
	names := []string{"GIMP", "Image Editor", "Terminal", "gThumb"}
	queries := []string{"gim", "ied", "tml", "gtb", "zz", "IMAGE", "term"}

	contains := func(name, query string) bool {
		n := []byte(lower(name))
		q := []byte(lower(query))
		qi := 0
		for ni := 0; ni < len(n) && qi < len(q); ni++ {
			if n[ni] == q[qi] {
				qi++
			}
		}
		return qi == len(q)
	}

	for _, name := range names {
		for _, query := range queries {
			_, ok := Match(name, query)
			if want := contains(name, query); ok != want {
				t.Errorf("Match(%q, %q) accepted = %v, want %v", name, query, ok, want)
			}
		}
	}
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func TestRankEmptyQuery(t *testing.T) {
	entries := entrySet("Charlie", "Alpha", "Beta")

	got := Rank(entries, "")
	if len(got) != 3 {
		t.Fatalf("empty query must return every entry, got %d", len(got))
	}
	for i, idx := range got {
		if idx != i {
			t.Errorf("empty query must keep discovery order, got %v", got)
			break
		}
	}
}

func TestRankExcludesNonMatches(t *testing.T) {
	entries := entrySet("GIMP", "Terminal", "Git GUI")

	got := Rank(entries, "gi")
	for _, idx := range got {
		if entries[idx].Name == "Terminal" {
			t.Error("non-matching entry must be excluded, not scored zero")
		}
	}
	if len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}
}

func TestRankOrdersByScore(t *testing.T) {
	// "gimp" scores its own name far higher than a scattered subsequence
	entries := entrySet("Graphics IMProver", "GIMP")

	got := Rank(entries, "gimp")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if entries[got[0]].Name != "GIMP" {
		t.Errorf("highest score first, got %q", entries[got[0]].Name)
	}
}

func TestRankStability(t *testing.T) {
	// Identical names score identically; their relative order must survive
	// any number of re-ranks.
	entries := entrySet("Files", "Files", "Files")

	for run := 0; run < 5; run++ {
		got := Rank(entries, "files")
		if len(got) != 3 {
			t.Fatalf("expected 3 matches, got %d", len(got))
		}
		for i, idx := range got {
			if idx != i {
				t.Fatalf("run %d: tie order changed: %v", run, got)
			}
		}
	}
}

func TestRankReturnsIndices(t *testing.T) {
	entries := entrySet("Alpha", "Beta")

	got := Rank(entries, "beta")
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Rank should return stable indices into the input, got %v", got)
	}
}
