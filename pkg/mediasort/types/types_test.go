package types

import (
	"errors"
	"testing"
)

func TestCategory_String(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryPhoto, "Photos"},
		{CategoryVideo, "Videos"},
		{CategoryNonMedia, "Non-Media"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCategory_DirName(t *testing.T) {
	if got := CategoryNonMedia.DirName(); got != "NonMedia" {
		t.Errorf("DirName() = %q, want NonMedia", got)
	}
	if got := CategoryPhoto.DirName(); got != "Photos" {
		t.Errorf("DirName() = %q, want Photos", got)
	}
	if got := CategoryVideo.DirName(); got != "Videos" {
		t.Errorf("DirName() = %q, want Videos", got)
	}
}

func TestCategory_IsMedia(t *testing.T) {
	if !CategoryPhoto.IsMedia() || !CategoryVideo.IsMedia() {
		t.Error("photo and video should be media")
	}
	if CategoryNonMedia.IsMedia() {
		t.Error("non-media should not be media")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RunMode
		wantErr bool
	}{
		{name: "report", input: "report", want: ModeReport},
		{name: "dry-run", input: "dry-run", want: ModeDryRun},
		{name: "organize", input: "organize", want: ModeOrganize},
		{name: "case insensitive", input: "Report", want: ModeReport},
		{name: "unknown", input: "bogus", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMode) {
					t.Fatalf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRunMode_Mutates(t *testing.T) {
	if ModeReport.Mutates() || ModeDryRun.Mutates() {
		t.Error("report and dry-run must not mutate")
	}
	if !ModeOrganize.Mutates() {
		t.Error("organize must mutate")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{name: "zero", bytes: 0, want: "0B"},
		{name: "bytes", bytes: 512, want: "512 B"},
		{name: "one KB", bytes: 1024, want: "1 KB"},
		{name: "fractional MB", bytes: 1536 * 1024, want: "1.5 MB"},
		{name: "two decimals", bytes: 1024 + 256, want: "1.25 KB"},
		{name: "GB", bytes: 3 * 1024 * 1024 * 1024, want: "3 GB"},
		{name: "TB", bytes: 2 * 1024 * 1024 * 1024 * 1024, want: "2 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
