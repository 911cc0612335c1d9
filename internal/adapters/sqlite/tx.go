package sqlite

import (
	"database/sql"
	"strconv"
	"time"

	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx             *sql.Tx
	dictionaryPath string
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// UpsertEntry inserts or replaces an entry
func (t *indexTx) UpsertEntry(entry *domain.IndexEntry) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO entries (key, translation, strokes)
		VALUES (?, ?, ?)
	`, string(entry.Key), entry.Translation, entry.Strokes)
	return err
}

// DeleteEntry removes an entry by key
func (t *indexTx) DeleteEntry(key domain.Key) error {
	_, err := t.tx.Exec(`DELETE FROM entries WHERE key = ?`, string(key))
	return err
}

// Clear removes every entry
func (t *indexTx) Clear() error {
	_, err := t.tx.Exec(`DELETE FROM entries`)
	return err
}

// SetModTime records the dictionary state the index reflects
func (t *indexTx) SetModTime(modTime time.Time) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('dictionary_path_hash', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('dictionary_mtime', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?);
	`, schemaVersion, hashPath(t.dictionaryPath),
		strconv.FormatInt(modTime.UnixNano(), 10),
		strconv.FormatInt(time.Now().Unix(), 10))
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
