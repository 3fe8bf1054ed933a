package main

import (
	"os"
	"runtime"

	"github.com/venvexec/cli/internal/constants"
	"github.com/venvexec/cli/internal/errs"
	"github.com/venvexec/cli/internal/locale"
	"github.com/venvexec/cli/internal/logging"
	"github.com/venvexec/cli/internal/print"
	"github.com/venvexec/cli/internal/runners/launch"
	"github.com/venvexec/cli/internal/target"
)

func init() {
	// This application is not doing enough to warrant parallelism, so let's
	// skip it and avoid the cost of scheduling.
	runtime.GOMAXPROCS(1)
}

func main() {
	if os.Getenv(constants.VerboseEnvVarName) == "true" {
		logging.SetVerbose(true)
	}

	if err := run(); err != nil {
		if !errs.IsSilent(err) {
			print.Error("%s: %s", constants.LauncherName, locale.JoinedErrorMessage(err))
			logging.Debug("Error stack: %s", errs.JoinMessage(err))
		}
		os.Exit(errs.UnwrapExitCode(err))
	}
}

func run() error {
	t, err := target.NewFromExecutable()
	if err != nil {
		return errs.Wrap(err, "Could not resolve launch target")
	}
	logging.Debug("Launch target - base: %s, env: %s, interpreter: %s, app: %s",
		t.BaseDir, t.EnvironmentDir, t.Interpreter, t.Application)

	// Everything we received is forwarded verbatim to the application
	return launch.New().Run(launch.NewParams(t), os.Args[1:]...)
}
