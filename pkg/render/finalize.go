package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plotforge/plotforge/pkg/errors"
)

// Output is the finalized form of one figure. Exactly one of PNG or Path is
// set, depending on which finalizer produced it.
type Output struct {
	PNG  []byte // in-memory PNG, image mode
	Path string // saved file path, file mode
}

// Finalizer converts finished PNG bytes into a call's output.
type Finalizer interface {
	Finalize(ctx context.Context, kind string, png []byte) (Output, error)
}

// Encoder is the image-mode finalizer: it returns the PNG bytes unchanged.
type Encoder struct{}

// Finalize implements Finalizer.
func (Encoder) Finalize(_ context.Context, _ string, png []byte) (Output, error) {
	return Output{PNG: png}, nil
}

// FileSaver is the file-mode finalizer: it persists the PNG to a timestamped
// file under Dir and, when Display is set, opens it in the platform viewer.
type FileSaver struct {
	Dir     string // target directory; defaults to os.TempDir()
	Display bool   // launch the platform image viewer after saving

	// now is overridable for tests.
	now func() time.Time
}

// Finalize implements Finalizer. The filename is "<kind>_<YYYYMMDD_HHMMSS>.png".
func (f FileSaver) Finalize(ctx context.Context, kind string, png []byte) (Output, error) {
	dir := f.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	now := time.Now
	if f.now != nil {
		now = f.now
	}

	name := fmt.Sprintf("%s_%s.png", kind, now().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, png, 0644); err != nil {
		return Output{}, errors.Wrap(errors.ErrCodeEncodeFailed, err, "save plot to %s", path)
	}

	if f.Display {
		if err := openViewer(ctx, path); err != nil {
			return Output{}, err
		}
	}
	return Output{Path: path}, nil
}
