// Package pager opens documents in an external pager program.
package pager

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/rfcdoc"
)

// Ensure Viewer implements rfcdoc.Viewer at compile time.
var _ rfcdoc.Viewer = (*Viewer)(nil)

// Resolve returns the first non-blank candidate, or the default pager.
// Callers pass candidates in precedence order: flag, $PAGER, config file.
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		if strings.TrimSpace(c) != "" {
			return c
		}
	}
	return rfcdoc.DefaultPager
}

// Viewer runs a pager command with the document path appended.
// The command is split on whitespace; shell quoting is not interpreted.
type Viewer struct {
	command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewViewer creates a Viewer attached to the process's standard streams.
func NewViewer(command string) *Viewer {
	return &Viewer{
		command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Command returns the exec.Cmd that would display path. The command is not
// tied to ctx: an interrupt typed in the pager reaches this process too, and
// the pager must be left to handle it and restore the terminal itself.
func (v *Viewer) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	fields := strings.Fields(v.command)
	if len(fields) == 0 {
		return nil, rfcdoc.Errorf(rfcdoc.EINVALID, "pager command is empty")
	}
	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = v.Stdin
	cmd.Stdout = v.Stdout
	cmd.Stderr = v.Stderr
	return cmd, nil
}

// View displays path and waits for the pager to exit. The pager's exit
// status is ignored; only a failure to start it is reported.
func (v *Viewer) View(ctx context.Context, path string) error {
	cmd, err := v.Command(ctx, path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return rfcdoc.WrapError(rfcdoc.EINTERNAL, err, "failed to start pager %q", v.command)
	}
	return nil
}
