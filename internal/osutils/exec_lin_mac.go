//go:build !windows
// +build !windows

package osutils

import (
	"golang.org/x/sys/unix"

	"github.com/venvexec/cli/internal/errs"
	"github.com/venvexec/cli/internal/logging"
)

// Handoff replaces the current process image with the given binary. On
// success it never returns; the launched program keeps our PID, inherits our
// standard streams and receives the provided argument vector (argv[0]
// included) and environment.
func Handoff(bin string, argv []string, env []string) (int, error) {
	logging.Debug("Replacing process image with: %s %v", bin, argv)

	if err := unix.Exec(bin, argv, env); err != nil {
		return -1, errs.Wrap(err, "exec of %s failed", bin)
	}

	// Exec does not return on success
	return 0, nil
}
