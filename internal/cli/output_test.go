package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fpang/ai-media-hub/internal/hub"
)

func TestDownloadNames(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{"single", []string{"generated.png"}, []string{"generated.png"}},
		{"repeated", []string{"generated.png", "generated.png", "generated.png"}, []string{"generated-1.png", "generated-2.png", "generated-3.png"}},
		{"mixed", []string{"summary.txt", "generated.png", "generated.png"}, []string{"summary.txt", "generated-1.png", "generated-2.png"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downloads := make([]hub.Download, len(tt.files))
			for i, f := range tt.files {
				downloads[i] = hub.Download{FileName: f}
			}
			got := DownloadNames(downloads)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("DownloadNames(%v) = %v, want %v", tt.files, got, tt.want)
			}
		})
	}
}

func TestWriteDownloads(t *testing.T) {
	dir := t.TempDir()
	out := hub.Outcome{
		Status: hub.StatusSuccess,
		Blocks: []hub.Block{
			{Kind: hub.BlockText, Text: "hello"},
			{Kind: hub.BlockImage, Download: &hub.Download{FileName: "generated.png", Data: []byte{1, 2}}},
			{Kind: hub.BlockImage, Download: &hub.Download{FileName: "generated.png", Data: []byte{3}}},
		},
	}

	paths, err := WriteDownloads(dir, out)
	if err != nil {
		t.Fatalf("WriteDownloads: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %v", paths)
	}

	data, err := os.ReadFile(filepath.Join(dir, "generated-2.png"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{3}) {
		t.Errorf("unexpected file content %v", data)
	}
}

func TestOutcomeError(t *testing.T) {
	if err := OutcomeError(hub.Outcome{Status: hub.StatusSuccess}); err != nil {
		t.Errorf("success should not be an error: %v", err)
	}
	if err := OutcomeError(hub.Outcome{Status: hub.StatusIdle}); !errors.Is(err, ErrNothingToDo) {
		t.Errorf("idle should be ErrNothingToDo, got %v", err)
	}
	err := OutcomeError(hub.Outcome{Status: hub.StatusError, Message: "Error: boom"})
	if err == nil || err.Error() != "Error: boom" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, hub.Outcome{Blocks: []hub.Block{
		{Kind: hub.BlockImage},
		{Kind: hub.BlockText, Heading: "Video Summary", Text: "A talk."},
	}})

	got := buf.String()
	if !strings.Contains(got, "## Video Summary") || !strings.Contains(got, "A talk.") {
		t.Errorf("unexpected output %q", got)
	}
}
