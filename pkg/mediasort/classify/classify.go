// Package classify assigns a media category to a file from its sniffed
// MIME type and lower-cased extension. Classification is a pure function
// of those two inputs; it never inspects file content itself.
package classify

import (
	"strings"

	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// rawPhotoExts are extensions treated as photos even when content sniffing
// fails or misreports them (raw formats commonly sniff as octet-stream).
var rawPhotoExts = map[string]bool{
	".raw":  true,
	".arw":  true,
	".cr2":  true,
	".nef":  true,
	".dng":  true,
	".heic": true,
}

// videoExts are container extensions treated as videos when the MIME
// prefix check misses.
var videoExts = map[string]bool{
	".mkv": true,
	".mov": true,
	".mp4": true,
	".avi": true,
	".3gp": true,
}

// Classify assigns a category from a MIME type and an extension.
// The extension must already be lower-cased (including the leading dot);
// callers derive it via NormalizeExt. Classify is total: it always
// returns a valid category and has no error conditions.
func Classify(mimeType, ext string) types.Category {
	switch {
	case strings.HasPrefix(mimeType, "image/") || rawPhotoExts[ext]:
		return types.CategoryPhoto
	case strings.HasPrefix(mimeType, "video/") || videoExts[ext]:
		return types.CategoryVideo
	default:
		return types.CategoryNonMedia
	}
}

// NormalizeExt lower-cases an extension (with leading dot, as returned by
// filepath.Ext) and substitutes the no-extension sentinel for the empty
// string.
func NormalizeExt(ext string) string {
	if ext == "" {
		return types.ExtNone
	}
	return strings.ToLower(ext)
}
