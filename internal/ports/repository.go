package ports

import (
	"time"

	"plovermd/internal/domain"
)

// DictionaryRepository defines the interface for markdown dictionary storage
type DictionaryRepository interface {
	// Path returns the resolved location of the dictionary
	Path() string

	// Load reads and parses the whole dictionary
	Load() (*domain.Document, error)

	// Save reconciles the document and replaces the stored dictionary with it
	Save(doc *domain.Document) error

	// ModTime reports when the dictionary last changed
	ModTime() (time.Time, error)
}

// MappingCodec reads and writes flat dictionaries in another format
type MappingCodec interface {
	Read(path string) (domain.Mapping, error)
	Write(path string, m domain.Mapping) error
}
