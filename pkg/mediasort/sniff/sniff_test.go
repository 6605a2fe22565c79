package sniff

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamesainslie/mediasort/pkg/mediasort/types"
)

func TestFileCommand_MissingBinary(t *testing.T) {
	s := &FileCommand{} // no resolved binary

	got := s.Sniff(context.Background(), "/tmp/whatever")
	if got != types.MimeUnknown {
		t.Errorf("Sniff() = %q, want %q", got, types.MimeUnknown)
	}
}

func TestFileCommand_NonexistentPath(t *testing.T) {
	s := NewFileCommand()

	// Whether or not file(1) is installed, a missing path must degrade
	// to the sentinel rather than an error.
	got := s.Sniff(context.Background(), filepath.Join(t.TempDir(), "missing.bin"))
	if got != types.MimeUnknown {
		t.Errorf("Sniff() = %q, want %q", got, types.MimeUnknown)
	}
}

func TestFileCommand_TextFile(t *testing.T) {
	s := NewFileCommand()
	if s.binary == "" {
		t.Skip("file utility not installed")
	}

	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got := s.Sniff(context.Background(), path)
	if !strings.HasPrefix(got, "text/") {
		t.Errorf("Sniff() = %q, want text/ prefix", got)
	}
}

func TestStatic(t *testing.T) {
	s := Static{"/a/photo.jpg": "image/jpeg"}

	if got := s.Sniff(context.Background(), "/a/photo.jpg"); got != "image/jpeg" {
		t.Errorf("Sniff() = %q, want image/jpeg", got)
	}
	if got := s.Sniff(context.Background(), "/a/other.bin"); got != types.MimeUnknown {
		t.Errorf("Sniff() = %q, want %q", got, types.MimeUnknown)
	}
}
