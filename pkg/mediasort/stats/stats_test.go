package stats

import (
	"errors"
	"testing"

	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

func TestStats_Record(t *testing.T) {
	s := New()

	s.Record(types.CategoryPhoto, ".jpg", 100)
	s.Record(types.CategoryPhoto, ".jpg", 50)
	s.Record(types.CategoryPhoto, ".cr2", 2000)
	s.Record(types.CategoryVideo, ".mp4", 5000)
	s.Record(types.CategoryNonMedia, ".txt", 10)

	tests := []struct {
		cat       types.Category
		wantCount int64
		wantBytes int64
	}{
		{types.CategoryPhoto, 3, 2150},
		{types.CategoryVideo, 1, 5000},
		{types.CategoryNonMedia, 1, 10},
	}

	for _, tt := range tests {
		got := s.Total(tt.cat)
		if got.Count != tt.wantCount || got.Bytes != tt.wantBytes {
			t.Errorf("Total(%v) = {%d %d}, want {%d %d}",
				tt.cat, got.Count, got.Bytes, tt.wantCount, tt.wantBytes)
		}
	}
}

// Per-extension sums within a category must equal that category's totals.
func TestStats_RowsSumToTotals(t *testing.T) {
	s := New()
	s.Record(types.CategoryPhoto, ".jpg", 100)
	s.Record(types.CategoryPhoto, ".png", 200)
	s.Record(types.CategoryPhoto, ".jpg", 300)
	s.Record(types.CategoryPhoto, types.ExtNone, 400)

	var count, bytes int64
	for _, row := range s.Rows(types.CategoryPhoto) {
		count += row.Count
		bytes += row.Bytes
	}

	total := s.Total(types.CategoryPhoto)
	if count != total.Count {
		t.Errorf("row count sum = %d, total = %d", count, total.Count)
	}
	if bytes != total.Bytes {
		t.Errorf("row byte sum = %d, total = %d", bytes, total.Bytes)
	}
}

func TestStats_RowsSorted(t *testing.T) {
	s := New()
	s.Record(types.CategoryPhoto, ".png", 1)
	s.Record(types.CategoryPhoto, ".jpg", 1)
	s.Record(types.CategoryPhoto, ".jpg", 1)
	s.Record(types.CategoryPhoto, ".jpg", 1)
	s.Record(types.CategoryPhoto, ".gif", 1)

	rows := s.Rows(types.CategoryPhoto)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	// Descending by count, ties broken by extension ascending.
	if rows[0].Ext != ".jpg" || rows[0].Count != 3 {
		t.Errorf("rows[0] = %+v, want .jpg count 3", rows[0])
	}
	if rows[1].Ext != ".gif" || rows[2].Ext != ".png" {
		t.Errorf("tie order = %q, %q; want .gif, .png", rows[1].Ext, rows[2].Ext)
	}
}

func TestStats_EmptyCategory(t *testing.T) {
	s := New()

	if got := s.Total(types.CategoryVideo); got.Count != 0 || got.Bytes != 0 {
		t.Errorf("Total() = %+v, want zero", got)
	}
	if rows := s.Rows(types.CategoryVideo); len(rows) != 0 {
		t.Errorf("Rows() = %v, want empty", rows)
	}
}

func TestMoveEntry_String(t *testing.T) {
	e := MoveEntry{
		Category: types.CategoryPhoto,
		Name:     "beach.jpg",
		Dest:     "/target/Photos/2023/06/beach.jpg",
	}
	want := "Photos: beach.jpg -> /target/Photos/2023/06/beach.jpg"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	e.Planned = true
	want = "[DRY RUN] " + want
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStats_MovesAndErrorsOrdered(t *testing.T) {
	s := New()
	s.AddMove(MoveEntry{Category: types.CategoryPhoto, Name: "a.jpg", Dest: "/t/a.jpg"})
	s.AddMove(MoveEntry{Category: types.CategoryVideo, Name: "b.mp4", Dest: "/t/b.mp4"})
	s.AddError("/s/c.txt", errors.New("permission denied"))

	moves := s.Moves()
	if len(moves) != 2 || moves[0].Name != "a.jpg" || moves[1].Name != "b.mp4" {
		t.Errorf("Moves() = %v, want a.jpg then b.mp4", moves)
	}

	errs := s.Errors()
	if len(errs) != 1 || errs[0].Path != "/s/c.txt" {
		t.Fatalf("Errors() = %v, want one entry for /s/c.txt", errs)
	}
	if want := "Error moving /s/c.txt: permission denied"; errs[0].String() != want {
		t.Errorf("String() = %q, want %q", errs[0].String(), want)
	}
}
