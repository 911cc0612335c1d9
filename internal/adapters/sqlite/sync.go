package sqlite

import (
	"fmt"
	"time"

	"plovermd/internal/domain"
)

// Rebuild brings the index in line with the translations of m in one
// transaction. Unchanged rows are left alone; an index written by another
// schema version is cleared first.
func (idx *Index) Rebuild(m domain.Mapping, modTime time.Time) (*domain.IndexStats, error) {
	start := time.Now()
	stats := &domain.IndexStats{}

	existing := map[domain.Key]string{}
	if idx.meta("schema_version") == schemaVersion {
		var err error
		if existing, err = idx.translations(); err != nil {
			return nil, fmt.Errorf("failed to read index: %w", err)
		}
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}

	if len(existing) == 0 {
		if err := tx.Clear(); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to clear index: %w", err)
		}
	}

	for key, translation := range m.All() {
		old, ok := existing[key]
		delete(existing, key)
		if ok && old == translation {
			continue
		}

		entry := &domain.IndexEntry{
			Key:         key,
			Translation: translation,
			Strokes:     len(key.Strokes()),
		}
		if err := tx.UpsertEntry(entry); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to index %s: %w", key, err)
		}
		stats.EntriesIndexed++
	}

	// What is left was removed from the dictionary
	for key := range existing {
		if err := tx.DeleteEntry(key); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to remove %s: %w", key, err)
		}
		stats.EntriesRemoved++
	}

	if err := tx.SetModTime(modTime); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	idx.log.Debugw("synced index",
		"indexed", stats.EntriesIndexed,
		"removed", stats.EntriesRemoved,
		"duration", stats.Duration)

	return stats, nil
}

// translations returns every indexed key with its translation
func (idx *Index) translations() (map[domain.Key]string, error) {
	rows, err := idx.db.Query(`SELECT key, translation FROM entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.Key]string)
	for rows.Next() {
		var k, translation string
		if err := rows.Scan(&k, &translation); err != nil {
			return nil, err
		}
		out[domain.Key(k)] = translation
	}
	return out, rows.Err()
}
