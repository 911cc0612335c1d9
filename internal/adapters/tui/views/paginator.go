package views

import "sort"

// Paginator splits the entry list into pages that fit a number of screen
// lines. Rows may be taller than one line, so pages hold a varying number of
// entries.
type Paginator struct {
	lines   int   // screen lines per page
	heights []int // lines taken by each row
	starts  []int // first row of each page
	cursor  int
}

// NewPaginator creates a paginator fitting pages into the given number of lines
func NewPaginator(lines int) *Paginator {
	if lines <= 0 {
		lines = 10
	}
	return &Paginator{lines: lines}
}

// SetLines changes the page height, keeping the cursor visible
func (p *Paginator) SetLines(lines int) {
	p.lines = max(lines, 1)
	p.paginate()
}

// Lines returns the page height
func (p *Paginator) Lines() int {
	return p.lines
}

// SetRows replaces the rows with ones of the given heights.
// The cursor is clamped to the new last row.
func (p *Paginator) SetRows(heights []int) {
	p.heights = heights
	p.cursor = max(min(p.cursor, len(heights)-1), 0)
	p.paginate()
}

// Len returns the number of rows
func (p *Paginator) Len() int {
	return len(p.heights)
}

// paginate fills pages greedily; a row taller than a page gets one of its own
func (p *Paginator) paginate() {
	p.starts = p.starts[:0]
	used := 0
	for i, h := range p.heights {
		h = max(h, 1)
		if i == 0 || used+h > p.lines {
			p.starts = append(p.starts, i)
			used = 0
		}
		used += h
	}
}

// Cursor returns the selected row
func (p *Paginator) Cursor() int {
	return p.cursor
}

// SetCursor selects a row, clamped to the list
func (p *Paginator) SetCursor(pos int) {
	p.cursor = max(min(pos, len(p.heights)-1), 0)
}

// CursorUp moves the cursor up by one
func (p *Paginator) CursorUp() bool {
	if p.cursor > 0 {
		p.cursor--
		return true
	}
	return false
}

// CursorDown moves the cursor down by one
func (p *Paginator) CursorDown() bool {
	if p.cursor < len(p.heights)-1 {
		p.cursor++
		return true
	}
	return false
}

// Home moves the cursor to the first row
func (p *Paginator) Home() {
	p.SetCursor(0)
}

// End moves the cursor to the last row
func (p *Paginator) End() {
	p.SetCursor(len(p.heights) - 1)
}

// page returns the index of the page holding the cursor
func (p *Paginator) page() int {
	return max(sort.SearchInts(p.starts, p.cursor+1)-1, 0)
}

// VisibleRange returns the rows of the page holding the cursor
func (p *Paginator) VisibleRange() (start, end int) {
	if len(p.starts) == 0 {
		return 0, 0
	}
	page := p.page()
	start = p.starts[page]
	end = len(p.heights)
	if page+1 < len(p.starts) {
		end = p.starts[page+1]
	}
	return start, end
}

// TotalPages returns the number of pages, at least one
func (p *Paginator) TotalPages() int {
	return max(len(p.starts), 1)
}

// CurrentPage returns the page holding the cursor (1-based)
func (p *Paginator) CurrentPage() int {
	return p.page() + 1
}

// NextPage moves the cursor to the first row of the next page
func (p *Paginator) NextPage() bool {
	page := p.page()
	if page+1 >= len(p.starts) {
		return false
	}
	p.cursor = p.starts[page+1]
	return true
}

// PrevPage moves the cursor to the first row of the previous page
func (p *Paginator) PrevPage() bool {
	page := p.page()
	if page == 0 {
		return false
	}
	p.cursor = p.starts[page-1]
	return true
}
