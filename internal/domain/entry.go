package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	DeletedPrefix = "(DELETED) "
	UpdatedPrefix = "(UPDATED) "
)

// Quote is the quoting style of a key or value: none, single or double
type Quote string

const (
	NoQuote     Quote = ""
	SingleQuote Quote = "'"
	DoubleQuote Quote = `"`
)

// Translation is a value that may be absent, like sql.NullString
type Translation struct {
	Text    string
	Present bool
}

// Present wraps a known translation
func Present(text string) Translation {
	return Translation{Text: text, Present: true}
}

// Absent is the missing translation
var Absent = Translation{}

// Entry is one parsed key/value line of a recognized fenced block
type Entry struct {
	Key      Key
	KeyQuote Quote

	// Value is the last value known to be on disk for this line.
	// Absent when the line was read with an (UPDATED) marker.
	Value Translation
	// UpdatedValue is what the next save renders
	UpdatedValue Translation

	ValueQuote     Quote
	Separator      string // verbatim, e.g. " : "
	CommentPadding string
	Comment        string // including the leading '#', or empty
	IsDeleted      bool
}

// IsUpdated reports whether the line renders with the (UPDATED) marker
func (e *Entry) IsUpdated() bool {
	return !e.IsDeleted && e.Value != e.UpdatedValue
}

// String renders the entry as one line of text, newline included
func (e *Entry) String() string {
	var b strings.Builder

	switch {
	case e.IsDeleted:
		b.WriteString(DeletedPrefix)
	case e.Value != e.UpdatedValue:
		b.WriteString(UpdatedPrefix)
	}

	value := e.UpdatedValue
	if !value.Present {
		value = e.Value
	}
	quote := e.ValueQuote
	if !fitsQuote(value.Text, quote) {
		quote = chooseValueQuote(value.Text)
	}

	b.WriteString(string(e.KeyQuote))
	b.WriteString(string(e.Key))
	b.WriteString(string(e.KeyQuote))
	b.WriteString(e.Separator)
	b.WriteString(string(quote))
	b.WriteString(escapeValue(value.Text, quote))
	b.WriteString(string(quote))
	b.WriteString(e.CommentPadding)
	b.WriteString(e.Comment)
	b.WriteByte('\n')

	return b.String()
}

// escapeValue is the inverse of unescapeQuoted/unescapeUnquoted
func escapeValue(value string, quote Quote) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	switch quote {
	case NoQuote:
		value = strings.NewReplacer(
			`"`, `\"`,
			`'`, `\'`,
			`#`, `\#`,
			"\n", `\\n`,
		).Replace(value)
	default:
		value = strings.ReplaceAll(value, string(quote), `\`+string(quote))
	}
	return value
}

// fitsQuote reports whether value reads back unchanged when written with quote.
// A quoted value must stay on one line. An unquoted value loses edge blanks to
// the separator and comment padding, and every backslash-n in it decodes to a
// newline.
func fitsQuote(value string, quote Quote) bool {
	if quote != NoQuote {
		return !strings.Contains(value, "\n")
	}
	if strings.Contains(value, `\n`) {
		return false
	}
	first, _ := utf8.DecodeRuneInString(value)
	last, _ := utf8.DecodeLastRuneInString(value)
	return !isBlank(first) && !isBlank(last)
}

// isBlank matches the whitespace the grammar treats as padding
func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// chooseValueQuote prefers no quotes, then double quotes, then single quotes.
//
// Two rules go beyond the blank, quote and '#' checks. A newline forces the
// unquoted form, the only one that writes it as an escape and keeps the entry on
// one line. A literal backslash-n forces quotes, since unquoted text would decode
// it into a newline.
func chooseValueQuote(value string) Quote {
	hasDouble := strings.Contains(value, `"`)
	hasSingle := strings.Contains(value, "'")
	special := strings.TrimSpace(value) != value ||
		strings.Contains(value, "#") ||
		strings.Contains(value, `\n`)

	switch {
	case strings.Contains(value, "\n"):
		return NoQuote
	case !hasDouble && (special || hasSingle), hasDouble && hasSingle:
		return DoubleQuote
	case !hasSingle && (special || hasDouble):
		return SingleQuote
	default:
		return NoQuote
	}
}

// newEntry synthesizes an entry for a key that no line carries yet
func newEntry(key Key, value string) Entry {
	keyQuote := NoQuote
	if key.needsQuote() {
		keyQuote = DoubleQuote
	}
	return Entry{
		Key:          key,
		KeyQuote:     keyQuote,
		Value:        Present(value),
		UpdatedValue: Present(value),
		ValueQuote:   chooseValueQuote(value),
		Separator:    ": ",
	}
}
