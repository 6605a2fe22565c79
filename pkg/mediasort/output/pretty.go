package output

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// PrettyFormatter formats the report with colors and styling using
// lipgloss. It produces a visually appealing output suitable for
// terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	for _, cat := range types.Categories {
		w.WriteString(f.formatCategory(r, cat))
	}

	w.WriteString(f.formatFooter(r))

	return nil
}

// formatHeader builds the header box with run metadata.
func (f *PrettyFormatter) formatHeader(r *Result) string {
	var lines []string

	sourceLabel := LabelStyle.Render("Source:")
	sourceValue := ValueStyle.Render(r.Source)
	lines = append(lines, fmt.Sprintf("%s %s", sourceLabel, sourceValue))

	if r.Target != "" {
		targetLabel := LabelStyle.Render("Target:")
		targetValue := ValueStyle.Render(r.Target)
		lines = append(lines, fmt.Sprintf("%s %s", targetLabel, targetValue))
	}

	var infoParts []string
	modeLabel := LabelStyle.Render("Mode:")
	modeValue := ValueStyle.Render(r.Mode.String())
	infoParts = append(infoParts, fmt.Sprintf("%s %s", modeLabel, modeValue))

	scannedLabel := LabelStyle.Render("Scanned:")
	scannedValue := ValueStyle.Render(fmt.Sprintf("%s files in %s",
		humanize.Comma(int64(r.FilesSeen)), formatDuration(r.Elapsed)))
	infoParts = append(infoParts, fmt.Sprintf("%s %s", scannedLabel, scannedValue))

	lines = append(lines, strings.Join(infoParts, "  "))

	if r.Mode == types.ModeDryRun {
		notice := WarningStyle.Bold(true)
		lines = append(lines, notice.Render("Dry run: no files were moved"))
	}

	content := strings.Join(lines, "\n")
	return HeaderBox.Render(content)
}

// formatCategory builds the section for one category: a styled title
// with its totals, then the per-extension rows.
func (f *PrettyFormatter) formatCategory(r *Result, cat types.Category) string {
	var sb strings.Builder

	total := r.Stats.Total(cat)
	title := TitleStyle.Render(strings.ToUpper(cat.String()))
	summary := MutedStyle.Render(fmt.Sprintf("%s files, %s",
		humanize.Comma(total.Count), types.FormatSize(total.Bytes)))
	sb.WriteString(fmt.Sprintf("%s  %s\n", title, summary))

	rows := r.Stats.Rows(cat)
	if len(rows) == 0 {
		sb.WriteString(MutedStyle.Render("  none") + "\n")
	}
	for _, row := range rows {
		ext := ValueStyle.Render(fmt.Sprintf("%-10s", row.Ext))
		count := fmt.Sprintf("%5d files", row.Count)
		size := SizeStyle.Render(types.FormatSize(row.Bytes))
		sb.WriteString(fmt.Sprintf("  %s %s (%s)\n", ext, count, size))
	}
	sb.WriteString("\n")

	return sb.String()
}

// formatFooter builds the footer box with move and error counts.
func (f *PrettyFormatter) formatFooter(r *Result) string {
	var parts []string

	totalLabel := LabelStyle.Render("Total:")
	totalValue := SizeStyle.Render(types.FormatSize(r.TotalSize()))
	parts = append(parts, fmt.Sprintf("%s %s", totalLabel, totalValue))

	if r.Mode != types.ModeReport {
		movesLabel := LabelStyle.Render("Moves:")
		movesValue := ValueStyle.Render(humanize.Comma(int64(len(r.Stats.Moves()))))
		parts = append(parts, fmt.Sprintf("%s %s", movesLabel, movesValue))

		errs := r.Stats.Errors()
		errLabel := LabelStyle.Render("Errors:")
		errValue := ValueStyle.Render(humanize.Comma(int64(len(errs))))
		if len(errs) > 0 {
			errValue = ErrorStyle.Render(humanize.Comma(int64(len(errs))))
		}
		parts = append(parts, fmt.Sprintf("%s %s", errLabel, errValue))
	}

	footer := FooterBox.Render(strings.Join(parts, "  "))

	errs := r.Stats.Errors()
	if r.Mode == types.ModeReport || len(errs) == 0 {
		return footer
	}

	var sb strings.Builder
	sb.WriteString(footer)
	sb.WriteString("\n")
	for _, e := range errs {
		sb.WriteString(ErrorStyle.Render(e.String()))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatDuration renders a duration rounded to a readable precision.
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

// Ensure PrettyFormatter implements Formatter.
var _ Formatter = (*PrettyFormatter)(nil)
