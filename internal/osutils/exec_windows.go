//go:build windows
// +build windows

package osutils

import (
	"os"
	"os/exec"

	"github.com/venvexec/cli/internal/errs"
	"github.com/venvexec/cli/internal/logging"
	"github.com/venvexec/cli/internal/sighandler"
)

// Handoff emulates process image replacement, which Windows does not have:
// the binary is spawned with inherited standard streams and the provided
// environment, signals are forwarded to it, and its exit code is reported
// back so the caller can terminate with it. argv[0] is dropped as the spawn
// primitive supplies its own.
func Handoff(bin string, argv []string, env []string) (int, error) {
	logging.Debug("Spawning in lieu of exec: %s %v", bin, argv)

	cmd := exec.Command(bin, argv[1:]...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	cmd.Env = env

	if err := cmd.Start(); err != nil {
		return -1, errs.Wrap(err, "start of %s failed", bin)
	}

	fwd := sighandler.NewForwarder(cmd.Process, os.Interrupt)
	defer fwd.Close()

	if err := cmd.Wait(); err != nil {
		if _, isExitError := err.(*exec.ExitError); !isExitError {
			return -1, errs.Wrap(err, "wait on %s failed", bin)
		}
	}

	return CmdExitCode(cmd), nil
}
