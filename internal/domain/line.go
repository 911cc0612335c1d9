package domain

// LineKind discriminates the variants of RichLine
type LineKind int

const (
	LineProse LineKind = iota // verbatim text
	LineEntry                 // parsed key/value line
)

func (k LineKind) String() string {
	switch k {
	case LineEntry:
		return "Entry"
	default:
		return "Prose"
	}
}

// RichLine is one line of a document: either verbatim prose or a parsed entry
type RichLine struct {
	Kind  LineKind
	Text  string // LineProse only, newline included
	Entry Entry  // LineEntry only

	// IsNew marks lines synthesized by a save in this session. They are
	// dropped and regenerated by the next save so repeated saves agree.
	IsNew bool
}

// NewProseLine wraps a verbatim line of text
func NewProseLine(text string) *RichLine {
	return &RichLine{Kind: LineProse, Text: text}
}

// NewEntryLine wraps a parsed entry
func NewEntryLine(e Entry) *RichLine {
	return &RichLine{Kind: LineEntry, Entry: e}
}

// String renders the line as it is written to disk
func (l *RichLine) String() string {
	if l.Kind == LineEntry {
		return l.Entry.String()
	}
	return l.Text
}
