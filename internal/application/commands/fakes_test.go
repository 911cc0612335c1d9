package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

const simpleDictionary = "# Dictionary\n```yaml\nTEFT: test\nHEL/HRO: hello\n```\n"

// memoryRepo keeps the dictionary text in memory
type memoryRepo struct {
	text    string
	exists  bool
	modTime time.Time
	saves   int
	saveErr error
}

func newMemoryRepo(text string) *memoryRepo {
	return &memoryRepo{
		text:    text,
		exists:  true,
		modTime: time.Unix(1700000000, 0),
	}
}

func (r *memoryRepo) Path() string { return "/memory/user.md" }

func (r *memoryRepo) Load() (*domain.Document, error) {
	if !r.exists {
		return nil, fmt.Errorf("failed to read dictionary: %w", fs.ErrNotExist)
	}
	return domain.ParseDocument(r.text)
}

func (r *memoryRepo) Save(doc *domain.Document) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.text = doc.Save()
	r.exists = true
	r.modTime = r.modTime.Add(time.Second)
	r.saves++
	return nil
}

func (r *memoryRepo) ModTime() (time.Time, error) {
	if !r.exists {
		return time.Time{}, fs.ErrNotExist
	}
	return r.modTime, nil
}

// memoryCodec stores flat mappings by path
type memoryCodec struct {
	files map[string]domain.Mapping
}

func newMemoryCodec() *memoryCodec {
	return &memoryCodec{files: make(map[string]domain.Mapping)}
}

func (c *memoryCodec) Read(path string) (domain.Mapping, error) {
	m, ok := c.files[path]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: %w", path, fs.ErrNotExist)
	}
	return m, nil
}

func (c *memoryCodec) Write(path string, m domain.Mapping) error {
	copied := domain.NewDocument()
	if err := copied.Update(m); err != nil {
		return err
	}
	c.files[path] = copied
	return nil
}

// memoryIndex is a TranslationIndex over a slice
type memoryIndex struct {
	entries  []domain.IndexEntry
	modTime  time.Time
	rebuilds int
}

func (idx *memoryIndex) Open(string) error { return nil }
func (idx *memoryIndex) Close() error      { return nil }

func (idx *memoryIndex) NeedsRebuild(modTime time.Time) bool {
	return !idx.modTime.Equal(modTime)
}

func (idx *memoryIndex) Rebuild(m domain.Mapping, modTime time.Time) (*domain.IndexStats, error) {
	idx.entries = nil
	for k, v := range m.All() {
		idx.entries = append(idx.entries, domain.IndexEntry{Key: k, Translation: v, Strokes: len(k.Strokes())})
	}
	idx.modTime = modTime
	idx.rebuilds++
	return &domain.IndexStats{EntriesIndexed: len(idx.entries)}, nil
}

func (idx *memoryIndex) Lookup(key domain.Key) (*domain.IndexEntry, error) {
	for i := range idx.entries {
		if idx.entries[i].Key == key {
			return &idx.entries[i], nil
		}
	}
	return nil, nil
}

func (idx *memoryIndex) ReverseLookup(translation string) ([]domain.IndexEntry, error) {
	var out []domain.IndexEntry
	for _, e := range idx.entries {
		if e.Translation == translation {
			out = append(out, e)
		}
	}
	return out, nil
}

func (idx *memoryIndex) Search(query string, limit int) ([]domain.IndexEntry, error) {
	var out []domain.IndexEntry
	for _, e := range idx.entries {
		if strings.Contains(strings.ToLower(e.Translation), strings.ToLower(query)) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (idx *memoryIndex) BeginTx() (ports.IndexTx, error) {
	return nil, errors.New("not supported")
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
