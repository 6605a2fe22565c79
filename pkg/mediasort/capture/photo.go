package capture

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifDateLayout is the EXIF date-time format. Tag values may carry
// trailing sub-second or timezone annotations, so only the first 19
// bytes are parsed.
const exifDateLayout = "2006:01:02 15:04:05"

// exifBackend reads the DateTimeOriginal tag from a photo's EXIF block.
type exifBackend struct{}

// captureDate returns the original capture time embedded in the photo.
// A missing, unreadable, or malformed tag yields no result.
func (exifBackend) captureDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		logger.Debug("no exif data", "path", path, "error", err)
		return time.Time{}, false
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, false
	}

	value, err := tag.StringVal()
	if err != nil {
		return time.Time{}, false
	}
	if len(value) > len(exifDateLayout) {
		value = value[:len(exifDateLayout)]
	}

	t, err := time.Parse(exifDateLayout, value)
	if err != nil {
		logger.Debug("unparsable capture date", "path", path, "value", value)
		return time.Time{}, false
	}
	return t, true
}
