// Package types provides core data types for the mediasort organizer.
// It includes the media category and run mode enumerations, the per-file
// record passed through the engine, and size formatting helpers.
package types

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// MimeUnknown is the sentinel MIME type used when content sniffing fails.
// It matches neither the image/ nor video/ prefix, so classification
// degrades to extension-only matching.
const MimeUnknown = "unknown/unknown"

// ExtNone is the sentinel extension recorded for files without one.
const ExtNone = ".no_ext"

// Category is the classification outcome for a file.
type Category int

const (
	// CategoryPhoto covers still images, including raw camera formats.
	CategoryPhoto Category = iota

	// CategoryVideo covers video container formats.
	CategoryVideo

	// CategoryNonMedia covers everything else.
	CategoryNonMedia
)

// Categories lists all categories in report order.
var Categories = []Category{CategoryPhoto, CategoryVideo, CategoryNonMedia}

// String returns the display name of the category as used in reports
// and log entries.
func (c Category) String() string {
	switch c {
	case CategoryPhoto:
		return "Photos"
	case CategoryVideo:
		return "Videos"
	case CategoryNonMedia:
		return "Non-Media"
	default:
		return "Non-Media"
	}
}

// DirName returns the directory name used for the category in the target
// hierarchy. It differs from String only for Non-Media, whose directory
// carries no hyphen.
func (c Category) DirName() string {
	if c == CategoryNonMedia {
		return "NonMedia"
	}
	return c.String()
}

// IsMedia reports whether the category is Photo or Video.
func (c Category) IsMedia() bool {
	return c == CategoryPhoto || c == CategoryVideo
}

// RunMode governs whether the filesystem is mutated during a run.
type RunMode int

const (
	// ModeReport computes statistics only; no destination resolution,
	// no filesystem mutation, no move log.
	ModeReport RunMode = iota

	// ModeDryRun computes destinations and records planned moves without
	// touching the filesystem.
	ModeDryRun

	// ModeOrganize computes destinations and performs the moves.
	ModeOrganize
)

// Run mode string constants.
const (
	modeReport   = "report"
	modeDryRun   = "dry-run"
	modeOrganize = "organize"
)

// String returns the string representation of the run mode.
func (m RunMode) String() string {
	switch m {
	case ModeReport:
		return modeReport
	case ModeDryRun:
		return modeDryRun
	case ModeOrganize:
		return modeOrganize
	default:
		return modeOrganize
	}
}

// Mutates reports whether the mode performs filesystem mutation.
func (m RunMode) Mutates() bool {
	return m == ModeOrganize
}

// ErrInvalidMode indicates that the run mode string could not be parsed.
var ErrInvalidMode = errors.New("invalid run mode")

// ParseMode parses a string into a RunMode. Valid values are "report",
// "dry-run", and "organize" (case-insensitive).
func ParseMode(s string) (RunMode, error) {
	switch strings.ToLower(s) {
	case modeReport:
		return ModeReport, nil
	case modeDryRun:
		return ModeDryRun, nil
	case modeOrganize:
		return ModeOrganize, nil
	default:
		return ModeOrganize, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// FileRecord is the ephemeral per-file state built up while the engine
// processes a single file. Its effects persist only in the run statistics
// and the move log.
type FileRecord struct {
	// Path is the absolute source path of the file.
	Path string

	// Size is the file size in bytes.
	Size int64

	// Mime is the sniffed MIME type, or MimeUnknown on sniff failure.
	Mime string

	// Ext is the lower-cased extension including the dot, or ExtNone.
	Ext string

	// Category is the assigned classification.
	Category Category

	// CaptureDate is the extracted capture timestamp, if any.
	CaptureDate time.Time

	// HasDate reports whether CaptureDate was resolved.
	HasDate bool

	// Dest is the computed destination path (unresolved candidate).
	Dest string
}

// sizeUnits are the binary-prefixed unit labels used by FormatSize.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize converts a byte count to a human-readable string using
// 1024-based units with two-decimal rounding, e.g. "1.5 MB".
// Zero renders as "0B".
func FormatSize(bytes int64) string {
	if bytes <= 0 {
		return "0B"
	}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}
	v := float64(bytes) / math.Pow(1024, float64(i))
	s := math.Round(v*100) / 100
	return fmt.Sprintf("%g %s", s, sizeUnits[i])
}
