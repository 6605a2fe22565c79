package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/jamesainslie/mediasort/pkg/mediasort/classify"
	"github.com/jamesainslie/mediasort/pkg/mediasort/logging"
	"github.com/jamesainslie/mediasort/pkg/mediasort/stats"
	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// unknownDateDir is the destination bucket for media files whose
// capture date could not be determined.
const unknownDateDir = "UnknownDate"

// nonMediaDir is the destination bucket for files that are neither
// photos nor videos. Their source-relative layout is preserved below it.
const nonMediaDir = "NonMedia"

// Result summarizes a completed run.
type Result struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// Mode is the mode the run executed in.
	Mode types.RunMode

	// Source and Target are the absolute paths the run operated on.
	// Target is empty in report mode.
	Source string
	Target string

	// Stats holds the per-extension aggregates, the move record, and
	// any per-file errors.
	Stats *stats.Stats

	// FilesSeen counts the regular files that were classified.
	FilesSeen int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Engine walks a source tree, classifies each file, and depending on
// the mode either reports, plans, or performs relocation into a
// date-based hierarchy under the target.
type Engine struct {
	opts Options
	log  *logging.Logger
}

// New validates the options and returns a ready engine.
func New(opts Options) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		opts: opts,
		log:  logging.Get("engine"),
	}, nil
}

// Run scans the source tree once and returns the accumulated result.
// Individual file failures are recorded and never abort the run; only
// a failure to walk the source at all returns an error.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{
		RunID:  uuid.New().String(),
		Mode:   e.opts.Mode,
		Source: e.opts.Source,
		Target: e.opts.Target,
		Stats:  stats.New(),
	}

	e.log.Info("run started",
		"run_id", res.RunID,
		"mode", e.opts.Mode.String(),
		"source", e.opts.Source,
		"target", e.opts.Target)

	conf := fastwalk.Config{
		NumWorkers: 1,
		Sort:       fastwalk.SortLexical,
	}
	err := fastwalk.Walk(&conf, e.opts.Source, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil {
			e.log.Warn("walk error", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if e.insideTarget(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if e.insideTarget(path) || filepath.Base(path) == e.opts.LogName {
			return nil
		}
		e.processFile(ctx, path, res)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", e.opts.Source, err)
	}

	res.Elapsed = time.Since(start)

	var totalBytes int64
	for _, cat := range types.Categories {
		totalBytes += res.Stats.Total(cat).Bytes
	}
	e.log.Info("run finished",
		"run_id", res.RunID,
		"files", res.FilesSeen,
		"size", humanize.Bytes(uint64(totalBytes)),
		"moves", len(res.Stats.Moves()),
		"errors", len(res.Stats.Errors()),
		"elapsed", res.Elapsed)

	return res, nil
}

// processFile classifies a single regular file, records its stats, and
// in mutating modes plans or performs its relocation.
func (e *Engine) processFile(ctx context.Context, path string, res *Result) {
	info, err := os.Stat(path)
	if err != nil {
		e.log.Warn("stat failed", "path", path, "error", err)
		return
	}

	mimeType := e.opts.Sniffer.Sniff(ctx, path)
	ext := classify.NormalizeExt(filepath.Ext(path))
	cat := classify.Classify(mimeType, ext)

	// Stats are recorded up front so a file that later fails to move
	// still appears in the report.
	res.Stats.Record(cat, ext, info.Size())
	res.FilesSeen++

	e.log.Debug("classified",
		"path", path,
		"mime", mimeType,
		"ext", ext,
		"category", cat.String())

	if e.opts.Mode == types.ModeReport {
		return
	}

	dest := e.destination(path, cat)

	if e.opts.Mode == types.ModeDryRun {
		res.Stats.AddMove(stats.MoveEntry{
			Category: cat,
			Name:     filepath.Base(path),
			Dest:     dest,
			Planned:  true,
		})
		return
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		res.Stats.AddError(path, err)
		e.log.Warn("mkdir failed", "path", path, "error", err)
		return
	}
	resolved, err := e.opts.Resolver.ResolveSafe(dest)
	if err != nil {
		res.Stats.AddError(path, err)
		e.log.Warn("resolve failed", "path", path, "error", err)
		return
	}
	if err := moveFile(path, resolved); err != nil {
		res.Stats.AddError(path, err)
		e.log.Warn("move failed", "path", path, "dest", resolved, "error", err)
		return
	}
	res.Stats.AddMove(stats.MoveEntry{
		Category: cat,
		Name:     filepath.Base(path),
		Dest:     resolved,
	})
	e.log.Debug("moved", "path", path, "dest", resolved)
}

// destination computes the candidate destination for a file. Media
// files land in a {category}/{year}/{month} hierarchy, or under the
// unknown-date bucket when no capture date is available. Everything
// else mirrors its source-relative layout under the non-media bucket.
func (e *Engine) destination(path string, cat types.Category) string {
	base := filepath.Base(path)

	if !cat.IsMedia() {
		rel, err := filepath.Rel(e.opts.Source, path)
		if err != nil {
			rel = base
		}
		return filepath.Join(e.opts.Target, nonMediaDir, rel)
	}

	when, ok := e.opts.Dates.ExtractCaptureDate(path, cat)
	if !ok {
		return filepath.Join(e.opts.Target, unknownDateDir, cat.DirName(), base)
	}
	return filepath.Join(e.opts.Target,
		cat.DirName(),
		fmt.Sprintf("%d", when.Year()),
		fmt.Sprintf("%02d", int(when.Month())),
		base)
}

// insideTarget reports whether path is the target directory or lies
// underneath it. Always false in report mode, which has no target.
func (e *Engine) insideTarget(path string) bool {
	if e.opts.Target == "" {
		return false
	}
	if path == e.opts.Target {
		return true
	}
	return strings.HasPrefix(path, e.opts.Target+string(filepath.Separator))
}
