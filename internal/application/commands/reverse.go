package commands

import (
	"context"
	"fmt"

	"plovermd/internal/application"
	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

// ReverseLookupResult contains every outline that writes a translation
type ReverseLookupResult struct {
	Translation string
	Entries     []domain.IndexEntry
	Rebuilt     bool // whether the index had to be rebuilt first
}

// ReverseLookupCommand finds the outlines for a translation through the index,
// rebuilding it first when the dictionary changed since the last build
type ReverseLookupCommand struct {
	repo        ports.DictionaryRepository
	index       ports.TranslationIndex
	Translation string
}

// NewReverseLookupCommand creates a new ReverseLookupCommand
func NewReverseLookupCommand(repo ports.DictionaryRepository, index ports.TranslationIndex, translation string) *ReverseLookupCommand {
	return &ReverseLookupCommand{
		repo:        repo,
		index:       index,
		Translation: translation,
	}
}

// Validate checks if the reverse lookup is valid
func (c *ReverseLookupCommand) Validate() error {
	if c.Translation == "" {
		return application.ValidateRequired("translation", c.Translation)
	}
	if c.index == nil {
		return application.ErrIndexDisabled
	}
	return nil
}

// Execute runs the reverse lookup command
func (c *ReverseLookupCommand) Execute(ctx context.Context) (*ReverseLookupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	rebuilt, err := RefreshIndex(c.repo, c.index)
	if err != nil {
		return nil, err
	}

	entries, err := c.index.ReverseLookup(c.Translation)
	if err != nil {
		return nil, fmt.Errorf("reverse lookup failed: %w", err)
	}

	return &ReverseLookupResult{
		Translation: c.Translation,
		Entries:     entries,
		Rebuilt:     rebuilt,
	}, nil
}

// RefreshIndex rebuilds the index if the dictionary is newer than it,
// reporting whether a rebuild happened
func RefreshIndex(repo ports.DictionaryRepository, index ports.TranslationIndex) (bool, error) {
	modTime, err := repo.ModTime()
	if err != nil {
		return false, fmt.Errorf("failed to stat dictionary: %w", err)
	}
	if !index.NeedsRebuild(modTime) {
		return false, nil
	}

	doc, err := repo.Load()
	if err != nil {
		return false, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if _, err := index.Rebuild(doc, modTime); err != nil {
		return false, fmt.Errorf("failed to rebuild index: %w", err)
	}
	return true, nil
}
