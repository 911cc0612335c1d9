package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"plovermd/internal/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()

	idx := NewIndex(t.TempDir(), nil)
	if err := idx.Open("/dictionaries/user.md"); err != nil {
		t.Fatalf("failed to open index: %v", err)
	}
	t.Cleanup(func() {
		if err := idx.Close(); err != nil {
			t.Errorf("failed to close index: %v", err)
		}
	})
	return idx
}

func testDocument(t *testing.T) *domain.Document {
	t.Helper()

	doc, err := domain.ParseDocument("```yaml\n" +
		"HEL/HRO: hello\n" +
		"HEL: hello\n" +
		"H-L: hello\n" +
		"TEFT: test\n" +
		"TEFTS: tests\n" +
		"PERS: 100%\n" +
		"```\n")
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}
	return doc
}

func TestRebuild(t *testing.T) {
	idx := openTestIndex(t)
	modTime := time.Unix(1700000000, 123)

	if !idx.NeedsRebuild(modTime) {
		t.Error("expected a fresh index to need a rebuild")
	}

	stats, err := idx.Rebuild(testDocument(t), modTime)
	if err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	if stats.EntriesIndexed != 6 {
		t.Errorf("expected 6 entries indexed, got %d", stats.EntriesIndexed)
	}

	if idx.NeedsRebuild(modTime) {
		t.Error("expected index to be current after rebuild")
	}
	if !idx.NeedsRebuild(modTime.Add(time.Second)) {
		t.Error("expected a newer dictionary to need a rebuild")
	}
}

func TestRebuild_ReplacesEntries(t *testing.T) {
	idx := openTestIndex(t)

	if _, err := idx.Rebuild(testDocument(t), time.Unix(1, 0)); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	doc := domain.NewDocument()
	_ = doc.Set("TEFT", "test")
	_ = doc.Set("HEL/HRO", "hi")
	stats, err := idx.Rebuild(doc, time.Unix(2, 0))
	if err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	if stats.EntriesIndexed != 1 {
		t.Errorf("expected only HEL/HRO to be rewritten, got %d", stats.EntriesIndexed)
	}
	if stats.EntriesRemoved != 4 {
		t.Errorf("expected 4 entries removed, got %d", stats.EntriesRemoved)
	}

	changed, err := idx.Lookup("HEL/HRO")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if changed == nil || changed.Translation != "hi" {
		t.Errorf("expected HEL/HRO to be updated, got %+v", changed)
	}

	entry, err := idx.Lookup("HEL")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if entry != nil {
		t.Errorf("expected HEL to be gone, got %+v", entry)
	}
}

func TestReverseLookup(t *testing.T) {
	idx := openTestIndex(t)
	if _, err := idx.Rebuild(testDocument(t), time.Unix(1, 0)); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	entries, err := idx.ReverseLookup("hello")
	if err != nil {
		t.Fatalf("ReverseLookup failed: %v", err)
	}

	expected := []domain.Key{"H-L", "HEL", "HEL/HRO"}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d keys, got %d: %+v", len(expected), len(entries), entries)
	}
	for i, key := range expected {
		if entries[i].Key != key {
			t.Errorf("position %d: expected %s, got %s", i, key, entries[i].Key)
		}
	}

	none, err := idx.ReverseLookup("nothing")
	if err != nil {
		t.Fatalf("ReverseLookup failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no keys, got %+v", none)
	}
}

func TestSearch(t *testing.T) {
	idx := openTestIndex(t)
	if _, err := idx.Rebuild(testDocument(t), time.Unix(1, 0)); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	tests := []struct {
		name     string
		query    string
		limit    int
		expected int
	}{
		{"translation substring", "TES", 0, 2},
		{"key substring", "teft", 0, 2},
		{"limit", "hello", 1, 1},
		{"percent is literal", "%", 0, 1},
		{"underscore is literal", "_", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := idx.Search(tt.query, tt.limit)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(entries) != tt.expected {
				t.Errorf("expected %d results, got %d: %+v", tt.expected, len(entries), entries)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	idx := openTestIndex(t)
	if _, err := idx.Rebuild(testDocument(t), time.Unix(1, 0)); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	entry, err := idx.Lookup("HEL/HRO")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if entry == nil || entry.Translation != "hello" || entry.Strokes != 2 {
		t.Errorf("unexpected entry %+v", entry)
	}
}

func TestDatabasePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	a := databasePath("", "/a/user.md")
	b := databasePath("", "/b/user.md")

	if filepath.Dir(a) != filepath.Join("/data", "plovermd") {
		t.Errorf("expected XDG data dir, got %s", a)
	}
	if a == b {
		t.Error("expected different dictionaries to get different databases")
	}
	if databasePath("/custom", "/a/user.md") != filepath.Join("/custom", filepath.Base(a)) {
		t.Error("expected custom dir to keep the same file name")
	}
}
