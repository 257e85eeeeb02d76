package render

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/plotforge/plotforge/pkg/errors"
)

// viewerCommand returns the platform opener for image files.
func viewerCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32"
	default:
		return "xdg-open"
	}
}

// openViewer launches the platform image viewer on the given path.
// The viewer runs detached; only launch failures are reported.
func openViewer(ctx context.Context, path string) error {
	opener := viewerCommand()
	if _, err := exec.LookPath(opener); err != nil {
		return errors.Wrap(errors.ErrCodeDisplay, err, "no image viewer available (%s not found)", opener)
	}

	args := []string{path}
	if opener == "rundll32" {
		args = []string{"url.dll,FileProtocolHandler", path}
	}

	cmd := exec.CommandContext(ctx, opener, args...)
	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeDisplay, err, "open %s", path)
	}
	// Detach: the viewer outlives the call.
	go func() { _ = cmd.Wait() }()
	return nil
}
