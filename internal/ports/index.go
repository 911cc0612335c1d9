package ports

import (
	"time"

	"plovermd/internal/domain"
)

// TranslationIndex provides reverse lookup and search over a dictionary.
// Queries go through database indexes; the dictionary file is only read on rebuild.
type TranslationIndex interface {
	// Lifecycle
	Open(dictionaryPath string) error
	Close() error

	// NeedsRebuild reports whether the index is older than the dictionary modTime
	NeedsRebuild(modTime time.Time) bool
	Rebuild(m domain.Mapping, modTime time.Time) (*domain.IndexStats, error)

	// Queries
	Lookup(key domain.Key) (*domain.IndexEntry, error)
	ReverseLookup(translation string) ([]domain.IndexEntry, error)
	Search(query string, limit int) ([]domain.IndexEntry, error)

	// Batch updates
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic index updates
type IndexTx interface {
	UpsertEntry(entry *domain.IndexEntry) error
	DeleteEntry(key domain.Key) error
	Clear() error
	SetModTime(modTime time.Time) error

	Commit() error
	Rollback() error
}
