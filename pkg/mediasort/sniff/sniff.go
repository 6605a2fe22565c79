// Package sniff determines a file's MIME type from its content.
// The default implementation shells out to the file(1) utility; any
// failure degrades to a sentinel type rather than an error, so
// classification is never blocked by a sniffing problem.
package sniff

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jamesainslie/mediasort/pkg/mediasort/logging"
	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

// logger is the package-level logger for sniff operations.
var logger = logging.Get("sniff")

// commandTimeout is the maximum time to wait for the external sniffer.
// A stuck file(1) invocation must not stall the whole run.
const commandTimeout = 30 * time.Second

// Sniffer determines a MIME type string for a file path.
// Implementations must return types.MimeUnknown instead of an error when
// sniffing fails.
type Sniffer interface {
	Sniff(ctx context.Context, path string) string
}

// FileCommand sniffs MIME types by invoking `file --mime-type -b`.
type FileCommand struct {
	// binary is the resolved path of the file utility, empty if absent.
	binary string
}

// NewFileCommand creates a FileCommand sniffer. The file(1) binary is
// looked up once; if it is not on PATH every Sniff call returns the
// unknown sentinel.
func NewFileCommand() *FileCommand {
	bin, err := exec.LookPath("file")
	if err != nil {
		logger.Warn("file utility not found, MIME sniffing disabled", "error", err)
		return &FileCommand{}
	}
	return &FileCommand{binary: bin}
}

// Sniff returns the MIME type reported by file(1) for path, or
// types.MimeUnknown on any failure (missing binary, non-zero exit,
// timeout, unreadable output).
func (s *FileCommand) Sniff(ctx context.Context, path string) string {
	if s.binary == "" {
		return types.MimeUnknown
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, s.binary, "--mime-type", "-b", path).Output()
	if err != nil {
		logger.Debug("sniff failed", "path", path, "error", err)
		return types.MimeUnknown
	}

	mime := strings.TrimSpace(string(out))
	if mime == "" {
		return types.MimeUnknown
	}
	return mime
}

// Ensure FileCommand implements Sniffer.
var _ Sniffer = (*FileCommand)(nil)

// Static is a fixed-answer sniffer used in tests. It maps paths or base
// names to MIME strings and answers types.MimeUnknown for unmapped paths.
type Static map[string]string

// Sniff returns the configured MIME type for path.
func (s Static) Sniff(_ context.Context, path string) string {
	if mime, ok := s[path]; ok {
		return mime
	}
	if mime, ok := s[filepath.Base(path)]; ok {
		return mime
	}
	return types.MimeUnknown
}

// Ensure Static implements Sniffer.
var _ Sniffer = Static(nil)
