package commands

import (
	"context"
	"testing"

	"plovermd/internal/application"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "hello",
			query:     "hello",
			wantScore: 200, // contains + prefix + exact
		},
		{
			name:      "prefix match",
			target:    "hello world",
			query:     "hello",
			wantScore: 150, // contains + prefix
		},
		{
			name:      "substring match",
			target:    "say hello",
			query:     "hello",
			wantScore: 100, // contains only
		},
		{
			name:    "fuzzy match across strokes",
			target:  "HEL/HRO",
			query:   "hh",
			wantMin: 26, // start of string + after separator
		},
		{
			name:      "no match",
			target:    "hello",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "hello",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "TEFT",
			query:   "teft",
			wantMin: 100,
		},
		{
			name:    "stroke match",
			target:  "KP-PL/KOPLT",
			query:   "kopl",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)

			if tt.wantScore > 0 {
				if score != tt.wantScore {
					t.Errorf("expected score %d, got %d", tt.wantScore, score)
				}
			} else if tt.wantMin > 0 {
				if score < tt.wantMin {
					t.Errorf("expected score >= %d, got %d", tt.wantMin, score)
				}
			} else {
				if score != 0 {
					t.Errorf("expected score 0, got %d", score)
				}
			}
		})
	}
}

func TestFuzzyScore_Ordering(t *testing.T) {
	query := "hello"

	exactScore := FuzzyScore("hello", query)
	prefixScore := FuzzyScore("hello world", query)
	containsScore := FuzzyScore("say hello", query)
	fuzzyScore := FuzzyScore("h e l l o", query)

	if exactScore <= prefixScore {
		t.Errorf("exact match should score higher than prefix: %d <= %d", exactScore, prefixScore)
	}
	if prefixScore <= containsScore {
		t.Errorf("prefix match should score higher than contains: %d <= %d", prefixScore, containsScore)
	}
	if containsScore <= fuzzyScore {
		t.Errorf("contains match should score higher than fuzzy: %d <= %d", containsScore, fuzzyScore)
	}
}

func TestFuzzySort(t *testing.T) {
	entries := []application.Entry{
		{Key: "TPHOG", Translation: "nothing"},
		{Key: "HEL/HRO/WORLD", Translation: "hello world"},
		{Key: "KAOBG", Translation: "cook"},
		{Key: "SHEL/HRO", Translation: "say hello"},
	}

	sorted := FuzzySort(entries, "hello")

	if len(sorted) != 2 {
		t.Fatalf("expected 2 results, got %d: %v", len(sorted), sorted)
	}
	if sorted[0].Key != "HEL/HRO/WORLD" {
		t.Errorf("expected prefix match first, got %s", sorted[0].Key)
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Score > sorted[i-1].Score {
			t.Errorf("results not sorted by score: %d > %d at index %d",
				sorted[i].Score, sorted[i-1].Score, i)
		}
	}
}

func TestSearchCommand(t *testing.T) {
	repo := newMemoryRepo(simpleDictionary + "```yaml\nHEL/HRO/WORLD: hello world\nTPHOG: nothing\n```\n")

	t.Run("short query returns nothing", func(t *testing.T) {
		results, err := NewSearchCommand(repo, "h", 0).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected no results, got %v", results)
		}
	})

	t.Run("best match first", func(t *testing.T) {
		results, err := NewSearchCommand(repo, "hello", 0).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Key != "HEL/HRO" {
			t.Errorf("expected exact match first, got %s", results[0].Key)
		}
	})

	t.Run("limit", func(t *testing.T) {
		results, err := NewSearchCommand(repo, "hello", 1).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Errorf("expected 1 result, got %d", len(results))
		}
	})
}
