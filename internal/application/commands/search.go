package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"plovermd/internal/application"
	"plovermd/internal/ports"
)

// SearchResult wraps an entry with a relevance score
type SearchResult struct {
	application.Entry
	Score int
}

// SearchCommand searches the dictionary with fuzzy matching on keys and translations
type SearchCommand struct {
	repo  ports.DictionaryRepository
	Query string
	Limit int // <= 0 means no limit
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.DictionaryRepository, query string, limit int) *SearchCommand {
	return &SearchCommand{
		repo:  repo,
		Query: query,
		Limit: limit,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	doc, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	entries := make([]application.Entry, 0, doc.Len())
	for key, translation := range doc.All() {
		entries = append(entries, application.Entry{Key: key, Translation: translation})
	}

	results := FuzzySort(entries, c.Query)
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}
	return results, nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		if target == query {
			score += 50
		}
		return score
	}

	// Fuzzy match: chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] != query[queryIdx] {
			continue
		}
		if prevMatchIdx == i-1 {
			score += 10 // consecutive chars
		}
		if i == 0 {
			score += 15 // start of string
		}
		if i > 0 && isWordBoundary(target[i-1]) {
			score += 10
		}
		score++
		prevMatchIdx = i
		queryIdx++
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// isWordBoundary reports separators in translations and between strokes
func isWordBoundary(c byte) bool {
	switch c {
	case ' ', '/', '-', '{', '^':
		return true
	}
	return false
}

// FuzzySort scores entries against the query and sorts the matches by relevance.
// Ties keep dictionary order.
func FuzzySort(entries []application.Entry, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(entries))

	for _, e := range entries {
		best := max(FuzzyScore(e.Key.String(), query), FuzzyScore(e.Translation, query))
		if best > 0 {
			scored = append(scored, SearchResult{
				Entry: e,
				Score: best,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
