package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"plovermd/internal/domain"
	"plovermd/internal/logger"
	"plovermd/internal/ports"
)

const schemaVersion = "1"

// Index implements ports.TranslationIndex using SQLite
type Index struct {
	db             *sql.DB
	dir            string
	dictionaryPath string
	dbPath         string
	log            *zap.SugaredLogger
}

// Ensure Index implements TranslationIndex
var _ ports.TranslationIndex = (*Index)(nil)

// NewIndex creates a new SQLite index stored under dir.
// An empty dir selects $XDG_DATA_HOME/plovermd.
func NewIndex(dir string, log *zap.SugaredLogger) *Index {
	return &Index{dir: dir, log: logger.OrNop(log)}
}

// Open initializes the index for the given dictionary path
func (idx *Index) Open(dictionaryPath string) error {
	idx.dictionaryPath = dictionaryPath
	idx.dbPath = databasePath(idx.dir, dictionaryPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS entries (
			key TEXT PRIMARY KEY,
			translation TEXT NOT NULL,
			strokes INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_translation ON entries(translation);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	idx.log.Debugw("opened index", "path", idx.dbPath, "dictionary", dictionaryPath)
	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the location of the database file
func (idx *Index) Path() string {
	return idx.dbPath
}

// NeedsRebuild returns true if the index does not reflect a dictionary
// modified at modTime
func (idx *Index) NeedsRebuild(modTime time.Time) bool {
	version := idx.meta("schema_version")
	pathHash := idx.meta("dictionary_path_hash")
	mtime := idx.meta("dictionary_mtime")

	return version != schemaVersion ||
		pathHash != hashPath(idx.dictionaryPath) ||
		mtime != strconv.FormatInt(modTime.UnixNano(), 10)
}

func (idx *Index) meta(key string) string {
	var value string
	if err := idx.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value); err != nil {
		return ""
	}
	return value
}

// databasePath returns the path for the SQLite database
func databasePath(dir, dictionaryPath string) string {
	if dir == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, _ := os.UserHomeDir()
			dataHome = filepath.Join(home, ".local", "share")
		}
		dir = filepath.Join(dataHome, "plovermd")
	}

	return filepath.Join(dir, hashPath(dictionaryPath)+".db")
}

// hashPath returns a short stable hash of a dictionary path
func hashPath(path string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(path))
}

// Lookup returns the indexed entry for key, or nil when there is none
func (idx *Index) Lookup(key domain.Key) (*domain.IndexEntry, error) {
	var e domain.IndexEntry
	var k string

	err := idx.db.QueryRow(`
		SELECT key, translation, strokes
		FROM entries WHERE key = ?
	`, string(key)).Scan(&k, &e.Translation, &e.Strokes)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	e.Key = domain.Key(k)
	return &e, nil
}

// ReverseLookup returns every key whose translation is exactly translation,
// shortest outlines first
func (idx *Index) ReverseLookup(translation string) ([]domain.IndexEntry, error) {
	rows, err := idx.db.Query(`
		SELECT key, translation, strokes
		FROM entries WHERE translation = ?
		ORDER BY strokes, length(key), key
	`, translation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns entries whose key or translation contains query,
// case-insensitively. limit <= 0 means no limit.
func (idx *Index) Search(query string, limit int) ([]domain.IndexEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	rows, err := idx.db.Query(`
		SELECT key, translation, strokes
		FROM entries
		WHERE lower(translation) LIKE ? ESCAPE '\' OR lower(key) LIKE ? ESCAPE '\'
		ORDER BY length(translation), strokes, key
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]domain.IndexEntry, error) {
	var entries []domain.IndexEntry
	for rows.Next() {
		var e domain.IndexEntry
		var k string
		if err := rows.Scan(&k, &e.Translation, &e.Strokes); err != nil {
			return nil, err
		}
		e.Key = domain.Key(k)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx, dictionaryPath: idx.dictionaryPath}, nil
}
