// Package stats accumulates per-category, per-extension statistics for
// one organizer run, along with the ordered move and error records that
// feed the end-of-run report and move log.
package stats

import (
	"fmt"
	"sort"

	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// Total holds the running totals for one category.
type Total struct {
	// Count is the number of files classified into the category.
	Count int64

	// Bytes is the cumulative size of those files.
	Bytes int64
}

// Row is one extension line of the report for a category.
type Row struct {
	// Ext is the lower-cased extension, or the no-extension sentinel.
	Ext string

	// Count is the number of files with this extension.
	Count int64

	// Bytes is the cumulative size of those files.
	Bytes int64
}

// MoveEntry records one performed or planned move.
type MoveEntry struct {
	// Category is the classification of the moved file.
	Category types.Category

	// Name is the original base name of the file.
	Name string

	// Dest is the destination path. For dry runs this is the
	// unresolved candidate; for performed moves it is the final
	// collision-free path.
	Dest string

	// Planned marks a dry-run entry that did not touch the filesystem.
	Planned bool
}

// String renders the entry in the move-log line format.
func (e MoveEntry) String() string {
	line := fmt.Sprintf("%s: %s -> %s", e.Category, e.Name, e.Dest)
	if e.Planned {
		return "[DRY RUN] " + line
	}
	return line
}

// MoveError pairs a source path with the reason its move failed.
type MoveError struct {
	// Path is the source path of the file that failed to move.
	Path string

	// Reason describes the failure.
	Reason string
}

// String renders the error for the report's error section.
func (e MoveError) String() string {
	return fmt.Sprintf("Error moving %s: %s", e.Path, e.Reason)
}

// Stats is the run-scoped accumulator. It is mutated only by the engine,
// sequentially, once per processed file; it is not safe for concurrent
// use and does not need to be.
type Stats struct {
	counts map[types.Category]map[string]int64
	bytes  map[types.Category]map[string]int64
	totals map[types.Category]*Total
	moves  []MoveEntry
	errors []MoveError
}

// New creates an empty accumulator.
func New() *Stats {
	s := &Stats{
		counts: make(map[types.Category]map[string]int64),
		bytes:  make(map[types.Category]map[string]int64),
		totals: make(map[types.Category]*Total),
	}
	for _, c := range types.Categories {
		s.counts[c] = make(map[string]int64)
		s.bytes[c] = make(map[string]int64)
		s.totals[c] = &Total{}
	}
	return s
}

// Record counts one file of the given category, extension, and size.
// It is called exactly once per enumerated regular file, before any
// move attempt, so a later move failure never un-counts a file.
func (s *Stats) Record(cat types.Category, ext string, size int64) {
	s.counts[cat][ext]++
	s.bytes[cat][ext] += size
	s.totals[cat].Count++
	s.totals[cat].Bytes += size
}

// AddMove appends a move or plan entry in discovery order.
func (s *Stats) AddMove(e MoveEntry) {
	s.moves = append(s.moves, e)
}

// AddError appends a move failure in discovery order.
func (s *Stats) AddError(path string, err error) {
	s.errors = append(s.errors, MoveError{Path: path, Reason: err.Error()})
}

// Total returns the running totals for a category.
func (s *Stats) Total(cat types.Category) Total {
	return *s.totals[cat]
}

// Rows returns the extension rows for a category, sorted by descending
// count with ties broken by extension ascending so the report order is
// deterministic.
func (s *Stats) Rows(cat types.Category) []Row {
	rows := make([]Row, 0, len(s.counts[cat]))
	for ext, count := range s.counts[cat] {
		rows = append(rows, Row{Ext: ext, Count: count, Bytes: s.bytes[cat][ext]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Ext < rows[j].Ext
	})
	return rows
}

// Moves returns the recorded move/plan entries in discovery order.
func (s *Stats) Moves() []MoveEntry {
	return s.moves
}

// Errors returns the recorded move failures in discovery order.
func (s *Stats) Errors() []MoveError {
	return s.errors
}
