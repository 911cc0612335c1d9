package domain

import (
	"strings"
	"unicode"
)

// AddsHeading is the heading of the section new entries are written to
const AddsHeading = "## Added by Plover\n"

const (
	fenceOpenYAML = "```yaml\n"
	fenceClose    = "```\n"
)

type fenceState int

const (
	outsideFence fenceState = iota
	inRecognizedFence
	inIgnoredFence
)

// fenceTracker follows fenced blocks line by line and remembers where new
// entries go: before the closing fence of the single block that follows the
// most recent AddsHeading.
type fenceTracker struct {
	state fenceState
	ticks string

	inAddsSection bool
	cursor        *RichLine
}

// open handles a line seen outside any fence
func (t *fenceTracker) open(text string) {
	if text == AddsHeading {
		t.inAddsSection = true
		t.cursor = nil
	}

	ticks, tag, ok := parseFenceOpen(text)
	if !ok {
		return
	}
	t.ticks = ticks
	if tag == "" || tag == "yaml" {
		t.state = inRecognizedFence
	} else {
		t.state = inIgnoredFence
	}
}

// closes reports whether text closes the current fence
func (t *fenceTracker) closes(text string) bool {
	rest, ok := strings.CutPrefix(text, t.ticks)
	return ok && strings.TrimSpace(rest) == ""
}

// close leaves the current fence; line is the closing fence line itself
func (t *fenceTracker) close(line *RichLine) {
	if t.state == inRecognizedFence && t.inAddsSection {
		if t.cursor != nil {
			// Second block under the same heading: no unambiguous target
			t.inAddsSection = false
			t.cursor = nil
		} else {
			t.cursor = line
		}
	}
	t.state = outsideFence
	t.ticks = ""
}

// parseFenceOpen matches 3+ backticks, an optional word tag, optional
// whitespace and the end of line
func parseFenceOpen(text string) (ticks, tag string, ok bool) {
	body, found := strings.CutSuffix(text, "\n")
	if !found {
		return "", "", false
	}
	n := 0
	for n < len(body) && body[n] == '`' {
		n++
	}
	if n < 3 {
		return "", "", false
	}
	rest := body[n:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
	if end < 0 {
		end = len(rest)
	}
	if strings.TrimSpace(rest[end:]) != "" {
		return "", "", false
	}
	return body[:n], rest[:end], true
}

// parseLines classifies every line of text. It returns the rich lines and the
// insertion cursor, or the first error.
func parseLines(text string) ([]*RichLine, *RichLine, error) {
	var (
		lines   []*RichLine
		tracker fenceTracker
	)

	for i, raw := range splitLines(text) {
		switch tracker.state {
		case inRecognizedFence:
			if tracker.closes(raw) {
				line := NewProseLine(raw)
				tracker.close(line)
				lines = append(lines, line)
				continue
			}
			entry, err := ParseEntry(raw)
			if err != nil {
				return nil, nil, &LineError{Index: i, Text: raw, Err: err}
			}
			lines = append(lines, NewEntryLine(entry))

		case inIgnoredFence:
			line := NewProseLine(raw)
			if tracker.closes(raw) {
				tracker.close(line)
			}
			lines = append(lines, line)

		default:
			lines = append(lines, NewProseLine(raw))
			tracker.open(raw)
		}
	}

	if tracker.state != outsideFence {
		return nil, nil, ErrUnclosedFence
	}
	return lines, tracker.cursor, nil
}

// splitLines splits text after every newline, keeping the newlines
func splitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
