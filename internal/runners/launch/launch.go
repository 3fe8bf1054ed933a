package launch

import (
	"os"

	"github.com/venvexec/cli/internal/errs"
	"github.com/venvexec/cli/internal/fileutils"
	"github.com/venvexec/cli/internal/locale"
	"github.com/venvexec/cli/internal/logging"
	"github.com/venvexec/cli/internal/osutils"
	"github.com/venvexec/cli/internal/target"
	"github.com/venvexec/cli/internal/virtualenvironment"
)

// Launch validates a launch target and hands the process over to it
type Launch struct{}

// Params are the runner inputs
type Params struct {
	Target *target.Target
}

// New creates a Launch runner
func New() *Launch {
	return &Launch{}
}

// NewParams wraps the given target
func NewParams(t *target.Target) *Params {
	return &Params{Target: t}
}

// Validate performs the launch precondition checks in a fixed order,
// reporting the first failure. Nothing is created or repaired; the first
// missing resource is fatal.
func Validate(t *target.Target) error {
	if !fileutils.DirExists(t.EnvironmentDir) {
		return locale.NewInputError("err_env_not_found", "Virtual environment not found at: {{.V0}}", t.EnvironmentDir)
	}

	if !fileutils.FileExists(t.Interpreter) || !fileutils.IsExecutable(t.Interpreter) {
		return locale.NewInputError("err_interpreter_not_found", "Python interpreter not found or not executable at: {{.V0}}", t.Interpreter)
	}

	if !fileutils.FileExists(t.Application) {
		return locale.NewInputError("err_app_not_found", "Application entry point not found at: {{.V0}}", t.Application)
	}

	return nil
}

// Run validates the target, computes the activation environment and hands
// off to the interpreter. On POSIX a successful Run never returns; elsewhere
// it returns once the application exits, carrying the application's exit
// code.
func (l *Launch) Run(params *Params, args ...string) error {
	t := params.Target

	if err := Validate(t); err != nil {
		return err
	}

	venv := virtualenvironment.New(t)
	logging.Debug("Activating %s (id %s)", t.EnvironmentDir, venv.ActivationID())

	env := osutils.PrunedEnv(os.Environ(), venv.PruneVars()...)
	env = osutils.TransformedEnv(env, venv.Env())
	logging.Debug("Handing off to %s with PATH=%s", t.Interpreter, osutils.EnvSliceToMap(env)["PATH"])

	code, err := osutils.Handoff(t.Interpreter, launchArgv(t, args), env)
	if err != nil {
		return locale.WrapError(err, "err_launch_failed", "Could not launch {{.V0}}", t.Application)
	}

	// Only reachable where process replacement is emulated; whatever the
	// application exited with becomes our own exit code, and it already did
	// its own error reporting.
	if code != 0 {
		return errs.Silence(errs.WrapExitCode(nil, code))
	}

	return nil
}

// launchArgv is the argument vector handed to the interpreter: the
// interpreter itself, the entry point, then the launcher's own arguments
// untouched
func launchArgv(t *target.Target, args []string) []string {
	return append([]string{t.Interpreter, t.Application}, args...)
}
