package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// PlainFormatter renders the classic console report: an upper-cased
// section per category with its totals, extension rows sorted by
// descending count, and for mutating runs the error summary. No colors
// or styling are applied, so the output is safe to pipe or diff.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	if r.Mode == types.ModeReport {
		w.WriteString("\n--- DETAILED REPORT ---\n")
	} else {
		w.WriteString("\n--- SUMMARY REPORT ---\n")
	}
	if r.Mode == types.ModeDryRun {
		w.WriteString("NOTE: This was a DRY RUN. No files were moved.\n")
	}

	for _, cat := range types.Categories {
		total := r.Stats.Total(cat)
		fmt.Fprintf(w, "\n%s (Total: %d | Size: %s)\n",
			strings.ToUpper(cat.String()),
			total.Count,
			types.FormatSize(total.Bytes))

		for _, row := range r.Stats.Rows(cat) {
			fmt.Fprintf(w, "  %-10s : %5d files (%s)\n",
				row.Ext, row.Count, types.FormatSize(row.Bytes))
		}
	}

	if r.Mode != types.ModeReport {
		errs := r.Stats.Errors()
		fmt.Fprintf(w, "\nErrors encountered: %d\n", len(errs))
		if len(errs) > 0 {
			w.WriteString("\n--- Errors ---\n")
			for _, e := range errs {
				w.WriteString(e.String())
				w.WriteString("\n")
			}
		}
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

// Ensure PlainFormatter implements Formatter.
var _ Formatter = (*PlainFormatter)(nil)
