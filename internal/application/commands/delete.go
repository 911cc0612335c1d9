package commands

import (
	"context"
	"fmt"

	"plovermd/internal/application"
	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Key         domain.Key
	Translation string
	Message     string
}

// DeleteCommand removes a translation. Lines that carried it stay in the
// file, marked (DELETED).
type DeleteCommand struct {
	repo    ports.DictionaryRepository
	Strokes string
	key     domain.Key
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(repo ports.DictionaryRepository, strokes string) *DeleteCommand {
	return &DeleteCommand{
		repo:    repo,
		Strokes: strokes,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCommand) Validate() error {
	key, err := application.ParseStrokes("strokes", c.Strokes)
	if err != nil {
		return err
	}
	c.key = key
	return nil
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	translation, ok := doc.Get(c.key)
	if !ok {
		return nil, &application.NotFoundError{Key: c.key.String()}
	}
	doc.Delete(c.key)

	if err := c.repo.Save(doc); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", c.key, err)
	}

	return &DeleteResult{
		Key:         c.key,
		Translation: translation,
		Message:     fmt.Sprintf("Deleted %s: %s", c.key, translation),
	}, nil
}
