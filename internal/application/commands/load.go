package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

// LoadOrNew loads the dictionary, starting an empty one if the file does not exist
func LoadOrNew(repo ports.DictionaryRepository) (*domain.Document, error) {
	doc, err := repo.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return doc, nil
}
