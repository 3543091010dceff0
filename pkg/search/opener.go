package search

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/pkg/browser"
)

func init() {
	// stdout carries IPC frames in serve mode
	browser.Stdout = os.Stderr
}

// openURL is the platform launcher, swapped out in tests.
var openURL = browser.OpenURL

// SystemOpener launches the platform's default browser.
type SystemOpener struct {
	// Command overrides the platform launcher when set. The URL is appended
	// as the last argument.
	Command []string
}

// Open hands url to the browser and waits for the launcher to exit.
func (o SystemOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	if len(o.Command) == 0 {
		if err := openURL(url); err != nil {
			return fmt.Errorf("%w: %v", ErrLaunch, err)
		}
		return nil
	}

	args := append(append([]string(nil), o.Command[1:]...), url)
	if err := exec.CommandContext(ctx, o.Command[0], args...).Run(); err != nil {
		return fmt.Errorf("%w: %v", ErrLaunch, err)
	}
	return nil
}
