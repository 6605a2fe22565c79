package output

import (
	"bytes"
	"encoding/json"

	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// jsonOutput represents the full JSON output structure.
type jsonOutput struct {
	Categories []jsonCategory `json:"categories"`
	Moves      []jsonMove     `json:"moves,omitempty"`
	Errors     []jsonError    `json:"errors,omitempty"`
	Meta       jsonMeta       `json:"meta"`
}

// jsonCategory represents one category section in JSON output.
type jsonCategory struct {
	Name       string          `json:"name"`
	Count      int64           `json:"count"`
	Size       int64           `json:"size"`
	SizeHuman  string          `json:"size_human"`
	Extensions []jsonExtension `json:"extensions"`
}

// jsonExtension represents one per-extension row in JSON output.
type jsonExtension struct {
	Ext       string `json:"ext"`
	Count     int64  `json:"count"`
	Size      int64  `json:"size"`
	SizeHuman string `json:"size_human"`
}

// jsonMove represents one performed or planned move in JSON output.
type jsonMove struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Dest     string `json:"dest"`
	Planned  bool   `json:"planned,omitempty"`
}

// jsonError represents one per-file failure in JSON output.
type jsonError struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// jsonMeta represents run metadata in JSON output.
type jsonMeta struct {
	RunID     string `json:"run_id"`
	Mode      string `json:"mode"`
	Source    string `json:"source"`
	Target    string `json:"target,omitempty"`
	FilesSeen int    `json:"files_seen"`
	TotalSize int64  `json:"total_size"`
	Duration  string `json:"duration"`
}

// JSONFormatter formats the report as a single indented JSON object.
// It produces a complete document with categories, moves, errors, and
// meta sections suitable for machine consumption.
type JSONFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *JSONFormatter) Format(w *bytes.Buffer, r *Result) error {
	output := f.buildOutput(r)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildOutput converts the result into the JSON document structure.
func (f *JSONFormatter) buildOutput(r *Result) jsonOutput {
	out := jsonOutput{
		Meta: jsonMeta{
			RunID:     r.RunID,
			Mode:      r.Mode.String(),
			Source:    r.Source,
			Target:    r.Target,
			FilesSeen: r.FilesSeen,
			TotalSize: r.TotalSize(),
			Duration:  r.Elapsed.String(),
		},
	}

	for _, cat := range types.Categories {
		total := r.Stats.Total(cat)
		jc := jsonCategory{
			Name:      cat.String(),
			Count:     total.Count,
			Size:      total.Bytes,
			SizeHuman: types.FormatSize(total.Bytes),
		}
		for _, row := range r.Stats.Rows(cat) {
			jc.Extensions = append(jc.Extensions, jsonExtension{
				Ext:       row.Ext,
				Count:     row.Count,
				Size:      row.Bytes,
				SizeHuman: types.FormatSize(row.Bytes),
			})
		}
		out.Categories = append(out.Categories, jc)
	}

	for _, m := range r.Stats.Moves() {
		out.Moves = append(out.Moves, jsonMove{
			Category: m.Category.String(),
			Name:     m.Name,
			Dest:     m.Dest,
			Planned:  m.Planned,
		})
	}
	for _, e := range r.Stats.Errors() {
		out.Errors = append(out.Errors, jsonError{
			Path:   e.Path,
			Reason: e.Reason,
		})
	}

	return out
}

func init() {
	Register("json", func() Formatter {
		return &JSONFormatter{}
	})
}

// Ensure JSONFormatter implements Formatter.
var _ Formatter = (*JSONFormatter)(nil)
