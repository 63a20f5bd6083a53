package browser

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

type Launcher struct{}

func NewLauncher() *Launcher {
	return &Launcher{}
}

// Open starts the platform's default handler for link and does not wait for it.
func (l *Launcher) Open(ctx context.Context, link string) error {
	cmd, err := command(runtime.GOOS, link)
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "start browser")
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

func command(goos, link string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		// cmd treats & as a command separator
		return exec.Command("cmd", "/c", "start", strings.ReplaceAll(link, "&", "^&")), nil
	case "darwin":
		return exec.Command("open", link), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", link), nil
	default:
		return nil, errors.Errorf("opening a browser is not supported on %s", goos)
	}
}
