package application

import (
	"fmt"
	"strings"

	"plovermd/internal/domain"
)

// Re-export domain types for use by adapters
type (
	Key        = domain.Key
	Document   = domain.Document
	IndexEntry = domain.IndexEntry
	LineError  = domain.LineError
)

// Entry is one translation of the flat mapping
type Entry struct {
	Key         domain.Key
	Translation string
}

// ParseStrokes validates user input as a key. Surrounding whitespace is
// ignored and strokes may be separated by spaces as well as slashes.
func ParseStrokes(field, input string) (domain.Key, error) {
	text := strings.Join(strings.Fields(input), domain.StrokeSeparator)
	if text == "" {
		return "", &ValidationError{
			Field:   field,
			Message: "strokes are required",
		}
	}

	key, err := domain.ParseKey(text)
	if err != nil {
		return "", &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid strokes %q", input),
		}
	}
	return key, nil
}
