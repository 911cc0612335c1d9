package domain

import "time"

// IndexEntry is one row of the translation index
type IndexEntry struct {
	Key         Key
	Translation string
	Strokes     int // number of strokes, shorter outlines sort first
}

// IndexStats holds statistics from an index rebuild
type IndexStats struct {
	EntriesIndexed int // rows written
	EntriesRemoved int // rows whose key left the dictionary
	Duration       time.Duration
}
