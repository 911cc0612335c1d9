package commands

import (
	"context"
	"fmt"

	"plovermd/internal/application"
	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

// AddResult contains the result of adding a translation
type AddResult struct {
	Key         domain.Key
	Translation string
	Previous    string // previous translation, if Replaced
	Replaced    bool
	NewSection  bool // an "Added by Plover" section was started for it
	Message     string
}

// AddCommand adds or replaces a translation and saves the dictionary
type AddCommand struct {
	repo        ports.DictionaryRepository
	Strokes     string
	Translation string
	key         domain.Key
}

// NewAddCommand creates a new AddCommand
func NewAddCommand(repo ports.DictionaryRepository, strokes, translation string) *AddCommand {
	return &AddCommand{
		repo:        repo,
		Strokes:     strokes,
		Translation: translation,
	}
}

// Validate checks if the add operation is valid
func (c *AddCommand) Validate() error {
	key, err := application.ParseStrokes("strokes", c.Strokes)
	if err != nil {
		return err
	}

	if c.Translation == "" {
		return &application.ValidationError{
			Field:   "translation",
			Message: "translation is required",
		}
	}

	c.key = key
	return nil
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*AddResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := LoadOrNew(c.repo)
	if err != nil {
		return nil, err
	}

	previous, replaced := doc.Get(c.key)
	newSection := !replaced && doc.LineOf(c.key) == 0 && !doc.HasInsertionPoint()
	if err := doc.Set(c.key, c.Translation); err != nil {
		return nil, err
	}

	if err := c.repo.Save(doc); err != nil {
		return nil, fmt.Errorf("failed to save dictionary: %w", err)
	}

	result := &AddResult{
		Key:         c.key,
		Translation: c.Translation,
		Previous:    previous,
		Replaced:    replaced,
		NewSection:  newSection,
		Message:     fmt.Sprintf("Added %s: %s", c.key, c.Translation),
	}
	switch {
	case replaced:
		result.Message = fmt.Sprintf("Updated %s: %s (was %s)", c.key, c.Translation, previous)
	case newSection:
		result.Message += " (new section)"
	}
	return result, nil
}
