// Package capture extracts the embedded original capture timestamp from
// media files. Photos are read via their EXIF DateTimeOriginal tag,
// videos via the creation time of their ISO BMFF container. Every
// backend failure is converted into "no result": the absence of a
// capture date is a normal outcome that routes the file to the
// unknown-date bucket, not an error.
package capture

import (
	"path/filepath"
	"time"

	"github.com/jamesainslie/mediasort/pkg/mediasort/logging"
	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// logger is the package-level logger for capture operations.
var logger = logging.Get("capture")

// Extractor resolves a best-effort capture date for a file.
// Implementations never return an error; a false second value means no
// date could be determined.
type Extractor interface {
	ExtractCaptureDate(path string, category types.Category) (time.Time, bool)
}

// Dates dispatches extraction to a per-category backend.
type Dates struct {
	photo backend
	video backend
}

// backend is a format-family specific date reader.
type backend interface {
	captureDate(path string) (time.Time, bool)
}

// New creates an Extractor with the default photo (EXIF) and video
// (ISO BMFF) backends.
func New() *Dates {
	return &Dates{
		photo: exifBackend{},
		video: mvhdBackend{},
	}
}

// ExtractCaptureDate returns the embedded capture date for path given
// its category. Non-media categories always report no date.
func (d *Dates) ExtractCaptureDate(path string, category types.Category) (time.Time, bool) {
	switch category {
	case types.CategoryPhoto:
		return d.photo.captureDate(path)
	case types.CategoryVideo:
		return d.video.captureDate(path)
	default:
		return time.Time{}, false
	}
}

// Ensure Dates implements Extractor.
var _ Extractor = (*Dates)(nil)

// normalizeDateOnly lifts a value that carries only a calendar date to
// midnight of that date. Values with a time of day pass through.
func normalizeDateOnly(t time.Time) time.Time {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	return t
}

// Fixed is a test extractor answering a fixed date for mapped paths or
// base names and no date for everything else.
type Fixed map[string]time.Time

// ExtractCaptureDate returns the configured date for path.
func (f Fixed) ExtractCaptureDate(path string, category types.Category) (time.Time, bool) {
	if !category.IsMedia() {
		return time.Time{}, false
	}
	if t, ok := f[path]; ok {
		return t, true
	}
	t, ok := f[filepath.Base(path)]
	return t, ok
}

// Ensure Fixed implements Extractor.
var _ Extractor = Fixed(nil)
