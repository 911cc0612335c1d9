package commands

import (
	"context"
	"fmt"

	"plovermd/internal/application"
	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

// LookupResult contains the translation of a key
type LookupResult struct {
	Key         domain.Key
	Translation string
	FromIndex   bool // answered by an up to date index without reading the dictionary
}

// LookupCommand finds the translation of an outline.
// A fresh index answers directly; otherwise the dictionary is loaded.
type LookupCommand struct {
	repo    ports.DictionaryRepository
	index   ports.TranslationIndex // optional
	Strokes string
	key     domain.Key
}

// NewLookupCommand creates a new LookupCommand. index may be nil.
func NewLookupCommand(repo ports.DictionaryRepository, index ports.TranslationIndex, strokes string) *LookupCommand {
	return &LookupCommand{
		repo:    repo,
		index:   index,
		Strokes: strokes,
	}
}

// Validate checks that the strokes form a valid key
func (c *LookupCommand) Validate() error {
	key, err := application.ParseStrokes("strokes", c.Strokes)
	if err != nil {
		return err
	}
	c.key = key
	return nil
}

// Execute runs the lookup command
func (c *LookupCommand) Execute(ctx context.Context) (*LookupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if result, ok := c.lookupIndex(); ok {
		if result == nil {
			return nil, &application.NotFoundError{Key: c.key.String()}
		}
		return result, nil
	}

	doc, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	translation, ok := doc.Get(c.key)
	if !ok {
		return nil, &application.NotFoundError{Key: c.key.String()}
	}

	return &LookupResult{
		Key:         c.key,
		Translation: translation,
	}, nil
}

// lookupIndex answers from the index when it reflects the dictionary on disk.
// ok is false when the dictionary has to be read instead.
func (c *LookupCommand) lookupIndex() (result *LookupResult, ok bool) {
	if c.index == nil {
		return nil, false
	}
	modTime, err := c.repo.ModTime()
	if err != nil || c.index.NeedsRebuild(modTime) {
		return nil, false
	}

	entry, err := c.index.Lookup(c.key)
	if err != nil {
		return nil, false
	}
	if entry == nil {
		return nil, true
	}
	return &LookupResult{
		Key:         entry.Key,
		Translation: entry.Translation,
		FromIndex:   true,
	}, true
}
