// Package movelog writes the plain-text move log produced at the end of
// a non-report run: one line per performed move or dry-run plan entry.
package movelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/mediasort/pkg/mediasort/stats"
)

// FileName is the reserved name of the move log, written to the working
// directory. The engine skips files with this name during the walk so a
// run never consumes its own output.
const FileName = "organization_log.txt"

// Write renders the entries to the log file at dir/FileName, replacing
// any previous log. The file is written atomically via a temp file and
// rename so an interrupted run never leaves a half-written log.
func Write(dir string, entries []stats.MoveEntry) error {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}

	path := filepath.Join(dir, FileName)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing move log: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming move log: %w", err)
	}

	return nil
}
