package domain

import (
	"fmt"
	"strings"
)

// StrokeSeparator joins the strokes of a multi-stroke key
const StrokeSeparator = "/"

// strokeAlphabet lists every character a stroke may contain (steno order plus number keys)
const strokeAlphabet = "#STKPWHRAO*-EUFRPBLGTSDZ0123456789"

// Key identifies a translation by its ordered strokes, e.g. "HEL/HRO".
// The zero value is not a valid key.
type Key string

// NewKey builds a key from individual strokes
func NewKey(strokes ...string) (Key, error) {
	k := Key(strings.Join(strokes, StrokeSeparator))
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// ParseKey parses the slash-separated text form of a key
func ParseKey(text string) (Key, error) {
	k := Key(text)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// MustKey is like NewKey but panics on an invalid key. Intended for tests and constants.
func MustKey(strokes ...string) Key {
	k, err := NewKey(strokes...)
	if err != nil {
		panic(err)
	}
	return k
}

// Strokes returns the individual strokes of the key
func (k Key) Strokes() []string {
	return strings.Split(string(k), StrokeSeparator)
}

// String returns the slash-separated form
func (k Key) String() string {
	return string(k)
}

// Validate checks that every stroke is non-empty and drawn from the steno alphabet
func (k Key) Validate() error {
	if k == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	for _, stroke := range k.Strokes() {
		if err := validateStroke(stroke); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidKey, string(k), err)
		}
	}
	return nil
}

func validateStroke(stroke string) error {
	if stroke == "" {
		return fmt.Errorf("empty stroke")
	}
	for _, r := range stroke {
		if !strings.ContainsRune(strokeAlphabet, r) {
			return fmt.Errorf("invalid character %q in stroke %q", r, stroke)
		}
	}
	return nil
}

// needsQuote reports whether a key must be quoted when written as a new entry.
// A leading '#' or '*' would otherwise read as a comment or a YAML alias.
func (k Key) needsQuote() bool {
	first := k.Strokes()[0]
	return strings.HasPrefix(first, "#") || strings.HasPrefix(first, "*")
}
