package domain

import (
	"slices"
	"strings"
)

// Save reconciles the rich lines with the current mapping and returns the
// text of the document. Lines the mapping does not affect come out byte for
// byte as they were read. Saving twice without edits gives the same text.
func (d *Document) Save() string {
	d.reconcile()

	var b strings.Builder
	for _, line := range d.lines {
		b.WriteString(line.String())
	}
	return b.String()
}

func (d *Document) reconcile() {
	lines := make([]*RichLine, 0, len(d.lines))
	for _, line := range d.lines {
		if !line.IsNew {
			lines = append(lines, line)
		}
	}

	known := make(map[Key]struct{})
	for _, line := range lines {
		if line.Kind != LineEntry {
			continue
		}
		e := &line.Entry
		known[e.Key] = struct{}{}

		current, ok := d.dict.Get(e.Key)
		e.IsDeleted = !ok
		switch {
		case ok:
			e.UpdatedValue = Present(current)
		case e.Value.Present:
			e.UpdatedValue = Absent
		}
		// A line read as (UPDATED) has no known value; once deleted it keeps
		// showing the text it had.
	}

	var added []*RichLine
	for key, value := range d.All() {
		if _, ok := known[key]; ok || value == "" {
			continue
		}
		line := NewEntryLine(newEntry(key, value))
		line.IsNew = true
		added = append(added, line)
	}

	if len(added) > 0 {
		if at := slices.Index(lines, d.cursor); at >= 0 {
			lines = slices.Insert(lines, at, added...)
		} else {
			lines = append(lines, newSectionLines(added)...)
		}
	}

	d.lines = lines
}

// newSectionLines wraps entries in a fresh "Added by Plover" section
func newSectionLines(entries []*RichLine) []*RichLine {
	section := []*RichLine{
		NewProseLine("\n"),
		NewProseLine(AddsHeading),
		NewProseLine("\n"),
		NewProseLine(fenceOpenYAML),
	}
	section = append(section, entries...)
	section = append(section, NewProseLine(fenceClose))
	for _, line := range section {
		line.IsNew = true
	}
	return section
}
