package commands

import (
	"context"
	"fmt"

	"plovermd/internal/application"
	"plovermd/internal/ports"
)

// ConvertResult contains the result of an import or export
type ConvertResult struct {
	Path    string
	Count   int
	Message string
}

// ImportCommand merges a dictionary in another format into the markdown
// dictionary. Imported keys overwrite existing ones; new keys go to the
// "Added by Plover" section.
type ImportCommand struct {
	repo   ports.DictionaryRepository
	codec  ports.MappingCodec
	Source string
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(repo ports.DictionaryRepository, codec ports.MappingCodec, source string) *ImportCommand {
	return &ImportCommand{
		repo:   repo,
		codec:  codec,
		Source: source,
	}
}

// Validate checks if the import is valid
func (c *ImportCommand) Validate() error {
	return application.ValidateRequired("source", c.Source)
}

// Execute runs the import command
func (c *ImportCommand) Execute(ctx context.Context) (*ConvertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	src, err := c.codec.Read(c.Source)
	if err != nil {
		return nil, err
	}

	doc, err := LoadOrNew(c.repo)
	if err != nil {
		return nil, err
	}

	count := 0
	for range src.All() {
		count++
	}
	if err := doc.Update(src); err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", c.Source, err)
	}

	if err := c.repo.Save(doc); err != nil {
		return nil, fmt.Errorf("failed to save dictionary: %w", err)
	}

	return &ConvertResult{
		Path:    c.repo.Path(),
		Count:   count,
		Message: fmt.Sprintf("Imported %d translations from %s", count, c.Source),
	}, nil
}

// ExportCommand writes the flat mapping of the markdown dictionary in another format
type ExportCommand struct {
	repo        ports.DictionaryRepository
	codec       ports.MappingCodec
	Destination string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(repo ports.DictionaryRepository, codec ports.MappingCodec, destination string) *ExportCommand {
	return &ExportCommand{
		repo:        repo,
		codec:       codec,
		Destination: destination,
	}
}

// Validate checks if the export is valid
func (c *ExportCommand) Validate() error {
	return application.ValidateRequired("destination", c.Destination)
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ConvertResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	if err := c.codec.Write(c.Destination, doc); err != nil {
		return nil, err
	}

	return &ConvertResult{
		Path:    c.Destination,
		Count:   doc.Len(),
		Message: fmt.Sprintf("Exported %d translations to %s", doc.Len(), c.Destination),
	}, nil
}
