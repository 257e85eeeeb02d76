package render

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var fakePNG = []byte("\x89PNG\r\n\x1a\nfake")

func TestEncoder(t *testing.T) {
	out, err := Encoder{}.Finalize(context.Background(), "scatter_plot", fakePNG)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if !bytes.Equal(out.PNG, fakePNG) {
		t.Error("Encoder should return the PNG bytes unchanged")
	}
	if out.Path != "" {
		t.Error("Encoder output should not carry a path")
	}
}

func TestFileSaver(t *testing.T) {
	dir := t.TempDir()
	fixed := time.Date(2026, 8, 30, 14, 32, 1, 0, time.UTC)

	f := FileSaver{Dir: dir, now: func() time.Time { return fixed }}
	out, err := f.Finalize(context.Background(), "heatmap", fakePNG)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	want := filepath.Join(dir, "heatmap_20260830_143201.png")
	if out.Path != want {
		t.Errorf("Path = %q, want %q", out.Path, want)
	}
	if out.PNG != nil {
		t.Error("FileSaver output should not carry bytes")
	}

	data, err := os.ReadFile(out.Path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if !bytes.Equal(data, fakePNG) {
		t.Error("saved file should contain the PNG bytes")
	}
}

func TestFileSaver_BadDir(t *testing.T) {
	f := FileSaver{Dir: filepath.Join(t.TempDir(), "missing", "nested")}
	if _, err := f.Finalize(context.Background(), "histogram", fakePNG); err == nil {
		t.Error("saving into a missing directory should fail")
	}
}

func TestViewerCommand(t *testing.T) {
	if viewerCommand() == "" {
		t.Error("viewerCommand should never be empty")
	}
}
