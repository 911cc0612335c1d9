package domain

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is any ordered source of translations that can be bulk-loaded into a Document
type Mapping interface {
	All() iter.Seq2[Key, string]
}

// Document is a markdown dictionary: the rich lines of the file plus the flat
// key→translation mapping the host reads and writes.
//
// A Document is not safe for concurrent use.
type Document struct {
	lines  []*RichLine
	cursor *RichLine // closing fence new entries are inserted before, or nil
	dict   *orderedmap.OrderedMap[Key, string]
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		dict: orderedmap.New[Key, string](),
	}
}

// ParseDocument creates a document from the full text of a file
func ParseDocument(text string) (*Document, error) {
	d := NewDocument()
	if err := d.Load(text); err != nil {
		return nil, err
	}
	return d, nil
}

// Load replaces the document's contents with the parsed text.
// On error the document is left untouched.
func (d *Document) Load(text string) error {
	lines, cursor, err := parseLines(text)
	if err != nil {
		return err
	}

	dict := orderedmap.New[Key, string]()
	for _, line := range lines {
		if line.Kind == LineEntry && !line.Entry.IsDeleted {
			dict.Set(line.Entry.Key, line.Entry.UpdatedValue.Text)
		}
	}

	d.lines = lines
	d.cursor = cursor
	d.dict = dict
	return nil
}

// Get returns the translation for key
func (d *Document) Get(key Key) (string, bool) {
	return d.dict.Get(key)
}

// Set inserts or overwrites the translation for key
func (d *Document) Set(key Key, translation string) error {
	if err := key.Validate(); err != nil {
		return err
	}
	d.dict.Set(key, translation)
	return nil
}

// Delete removes key, reporting whether it was present
func (d *Document) Delete(key Key) bool {
	_, ok := d.dict.Delete(key)
	return ok
}

// Len returns the number of translations
func (d *Document) Len() int {
	return d.dict.Len()
}

// All iterates over the translations in insertion order
func (d *Document) All() iter.Seq2[Key, string] {
	return func(yield func(Key, string) bool) {
		for pair := d.dict.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns every key in insertion order
func (d *Document) Keys() []Key {
	keys := make([]Key, 0, d.dict.Len())
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}

// Update copies every translation of src into the document.
// It stops at the first invalid key.
func (d *Document) Update(src Mapping) error {
	for k, v := range src.All() {
		if err := d.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns a snapshot of the rich lines
func (d *Document) Lines() []RichLine {
	out := make([]RichLine, len(d.lines))
	for i, line := range d.lines {
		out[i] = *line
	}
	return out
}

// HasInsertionPoint reports whether new entries will be appended to an
// existing "Added by Plover" block rather than a new section
func (d *Document) HasInsertionPoint() bool {
	return d.cursor != nil
}

// LineOf returns the 1-based line number of the first line carrying key, or 0
func (d *Document) LineOf(key Key) int {
	for i, line := range d.lines {
		if line.Kind == LineEntry && line.Entry.Key == key {
			return i + 1
		}
	}
	return 0
}
