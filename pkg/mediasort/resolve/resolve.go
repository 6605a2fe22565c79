// Package resolve produces collision-free destination paths for file
// moves. When a candidate path is already occupied, a date-and-counter
// suffix is appended to the stem until an unused name is found.
//
// Resolution is a check-then-act sequence: the returned path is
// guaranteed unused at resolution time only. A concurrent external
// writer could occupy it before the move lands. That window is accepted
// for a single-process batch tool and is not defended against.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Resolver computes collision-free paths. The zero value is not usable;
// construct with New.
type Resolver struct {
	// now supplies the date used in collision suffixes. Injected so
	// tests can pin a day.
	now func() time.Time
}

// New creates a Resolver using the system clock.
func New() *Resolver {
	return &Resolver{now: time.Now}
}

// NewWithClock creates a Resolver with a fixed clock source.
func NewWithClock(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

// ResolveSafe returns candidate unchanged if nothing exists at that
// path. Otherwise it returns the first unused variant of the form
// {stem}_{YYYYMMDD}_{n}{suffix} within the same parent directory, with
// n counting up from 1.
func (r *Resolver) ResolveSafe(candidate string) (string, error) {
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate, nil
	} else if err != nil {
		return "", fmt.Errorf("checking destination %q: %w", candidate, err)
	}

	parent := filepath.Dir(candidate)
	suffix := filepath.Ext(candidate)
	stem := strings.TrimSuffix(filepath.Base(candidate), suffix)
	dateStr := r.now().Format("20060102")

	for n := 1; ; n++ {
		name := fmt.Sprintf("%s_%s_%d%s", stem, dateStr, n, suffix)
		path := filepath.Join(parent, name)

		_, err := os.Stat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking destination %q: %w", path, err)
		}
	}
}
