package resolve

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixedClock pins the resolver's date to 2024-01-01.
func fixedClock() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) error = %v", path, err)
	}
}

func TestResolver_ResolveSafe(t *testing.T) {
	t.Run("non-existing path returned unchanged", func(t *testing.T) {
		r := NewWithClock(fixedClock)
		candidate := filepath.Join(t.TempDir(), "photo.jpg")

		got, err := r.ResolveSafe(candidate)
		if err != nil {
			t.Fatalf("ResolveSafe() error = %v", err)
		}
		if got != candidate {
			t.Errorf("ResolveSafe() = %q, want %q", got, candidate)
		}
	})

	t.Run("occupied path gets date and counter suffix", func(t *testing.T) {
		r := NewWithClock(fixedClock)
		dir := t.TempDir()
		candidate := filepath.Join(dir, "photo.jpg")
		touch(t, candidate)

		got, err := r.ResolveSafe(candidate)
		if err != nil {
			t.Fatalf("ResolveSafe() error = %v", err)
		}
		want := filepath.Join(dir, "photo_20240101_1.jpg")
		if got != want {
			t.Errorf("ResolveSafe() = %q, want %q", got, want)
		}
	})

	t.Run("counter increments past occupied variants", func(t *testing.T) {
		r := NewWithClock(fixedClock)
		dir := t.TempDir()
		candidate := filepath.Join(dir, "photo.jpg")
		touch(t, candidate)
		touch(t, filepath.Join(dir, "photo_20240101_1.jpg"))

		got, err := r.ResolveSafe(candidate)
		if err != nil {
			t.Fatalf("ResolveSafe() error = %v", err)
		}
		want := filepath.Join(dir, "photo_20240101_2.jpg")
		if got != want {
			t.Errorf("ResolveSafe() = %q, want %q", got, want)
		}
	})

	t.Run("never returns an existing path", func(t *testing.T) {
		r := NewWithClock(fixedClock)
		dir := t.TempDir()
		candidate := filepath.Join(dir, "clip.mp4")
		touch(t, candidate)

		for range 5 {
			got, err := r.ResolveSafe(candidate)
			if err != nil {
				t.Fatalf("ResolveSafe() error = %v", err)
			}
			if _, err := os.Stat(got); !os.IsNotExist(err) {
				t.Fatalf("ResolveSafe() returned existing path %q", got)
			}
			touch(t, got)
		}
	})

	t.Run("file without extension", func(t *testing.T) {
		r := NewWithClock(fixedClock)
		dir := t.TempDir()
		candidate := filepath.Join(dir, "README")
		touch(t, candidate)

		got, err := r.ResolveSafe(candidate)
		if err != nil {
			t.Fatalf("ResolveSafe() error = %v", err)
		}
		want := filepath.Join(dir, "README_20240101_1")
		if got != want {
			t.Errorf("ResolveSafe() = %q, want %q", got, want)
		}
	})
}
