package commands

import (
	"context"
	"fmt"
	"strings"

	"plovermd/internal/application"
	"plovermd/internal/ports"
)

// ListCommand lists the translations of the dictionary in file order
type ListCommand struct {
	repo ports.DictionaryRepository
	// Filter keeps entries whose key or translation contains it, ignoring case
	Filter string
}

// NewListCommand creates a new ListCommand
func NewListCommand(repo ports.DictionaryRepository, filter string) *ListCommand {
	return &ListCommand{
		repo:   repo,
		Filter: filter,
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]application.Entry, error) {
	doc, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	filter := strings.ToLower(c.Filter)

	entries := make([]application.Entry, 0, doc.Len())
	for key, translation := range doc.All() {
		if filter != "" &&
			!strings.Contains(strings.ToLower(key.String()), filter) &&
			!strings.Contains(strings.ToLower(translation), filter) {
			continue
		}
		entries = append(entries, application.Entry{Key: key, Translation: translation})
	}
	return entries, nil
}
