package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/mediasort/pkg/mediasort/capture"
	"github.com/jamesainslie/mediasort/pkg/mediasort/movelog"
	"github.com/jamesainslie/mediasort/pkg/mediasort/resolve"
	"github.com/jamesainslie/mediasort/pkg/mediasort/sniff"
	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// Validation errors reported before any file is touched.
var (
	// ErrSourceMissing indicates the source directory does not exist.
	ErrSourceMissing = errors.New("source directory does not exist")

	// ErrSourceNotDir indicates the source path is not a directory.
	ErrSourceNotDir = errors.New("source path is not a directory")

	// ErrTargetRequired indicates a non-report mode was requested
	// without a target directory.
	ErrTargetRequired = errors.New("target directory is required for organization/dry-run")
)

// Options configures an organizer run.
type Options struct {
	// Source is the directory tree to scan. Required.
	Source string

	// Target is the destination root for moves. Required unless Mode
	// is ModeReport. It does not need to exist; directories are
	// created as files are placed.
	Target string

	// Mode selects report, dry-run, or organize behavior.
	Mode types.RunMode

	// Sniffer determines MIME types. Defaults to the file(1) sniffer.
	Sniffer sniff.Sniffer

	// Dates extracts capture dates. Defaults to the EXIF/mvhd extractor.
	Dates capture.Extractor

	// Resolver produces collision-free destination paths. Defaults to
	// a system-clock resolver.
	Resolver *resolve.Resolver

	// LogName is the reserved move-log file name skipped during the
	// walk. Defaults to the movelog package's fixed name.
	LogName string
}

// validate checks the options, resolves source and target to absolute
// paths, and fills in defaults.
func (o *Options) validate() error {
	src, err := filepath.Abs(o.Source)
	if err != nil {
		return fmt.Errorf("resolving source path: %w", err)
	}
	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, src)
		}
		return fmt.Errorf("checking source path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDir, src)
	}
	o.Source = src

	if o.Mode != types.ModeReport {
		if o.Target == "" {
			return ErrTargetRequired
		}
		tgt, err := filepath.Abs(o.Target)
		if err != nil {
			return fmt.Errorf("resolving target path: %w", err)
		}
		o.Target = tgt
	} else {
		o.Target = ""
	}

	if o.Sniffer == nil {
		o.Sniffer = sniff.NewFileCommand()
	}
	if o.Dates == nil {
		o.Dates = capture.New()
	}
	if o.Resolver == nil {
		o.Resolver = resolve.New()
	}
	if o.LogName == "" {
		o.LogName = movelog.FileName
	}

	return nil
}
