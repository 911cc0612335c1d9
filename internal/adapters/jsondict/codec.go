package jsondict

import (
	"bytes"
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/natefinch/atomic"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"plovermd/internal/domain"
	"plovermd/internal/ports"
)

// Dictionary is a flat Plover JSON dictionary in file order
type Dictionary struct {
	entries *orderedmap.OrderedMap[domain.Key, string]
}

// NewDictionary creates an empty dictionary
func NewDictionary() *Dictionary {
	return &Dictionary{entries: orderedmap.New[domain.Key, string]()}
}

// Set adds or replaces a translation
func (d *Dictionary) Set(key domain.Key, translation string) {
	d.entries.Set(key, translation)
}

// Get returns the translation for key
func (d *Dictionary) Get(key domain.Key) (string, bool) {
	return d.entries.Get(key)
}

// Len returns the number of translations
func (d *Dictionary) Len() int {
	return d.entries.Len()
}

// All iterates over the translations in file order
func (d *Dictionary) All() iter.Seq2[domain.Key, string] {
	return func(yield func(domain.Key, string) bool) {
		for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Parse decodes a JSON object of stroke → translation. Every key must be
// valid steno; the first invalid key fails the whole parse.
func Parse(data []byte) (*Dictionary, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	raw := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, raw); err != nil {
		return nil, fmt.Errorf("invalid JSON dictionary: %w", err)
	}

	d := NewDictionary()
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		key, err := domain.ParseKey(pair.Key)
		if err != nil {
			return nil, err
		}
		d.Set(key, pair.Value)
	}
	return d, nil
}

// Encode renders m the way Plover writes JSON dictionaries: one entry per
// line, no indentation, non-ASCII and HTML characters kept as is.
func Encode(m domain.Mapping) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("{")

	first := true
	for key, translation := range m.All() {
		if !first {
			b.WriteString(",")
		}
		first = false

		b.WriteString("\n")
		if err := encodeString(&b, string(key)); err != nil {
			return nil, err
		}
		b.WriteString(": ")
		if err := encodeString(&b, translation); err != nil {
			return nil, err
		}
	}

	b.WriteString("\n}\n")
	return b.Bytes(), nil
}

// encodeString appends s as a JSON string literal
func encodeString(b *bytes.Buffer, s string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	b.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
	return nil
}

// Codec implements ports.MappingCodec for JSON files
type Codec struct{}

var _ ports.MappingCodec = Codec{}

// Read loads a JSON dictionary file
func (Codec) Read(path string) (domain.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Write replaces path with the JSON rendering of m
func (Codec) Write(path string, m domain.Mapping) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, strings.NewReader(string(data))); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
