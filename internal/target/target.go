// Package target describes the fixed filesystem layout the launcher operates
// on. The layout is compiled in; a Target is constructed once at startup and
// passed around explicitly.
package target

import (
	"os"
	"path/filepath"

	"github.com/venvexec/cli/internal/constants"
	"github.com/venvexec/cli/internal/errs"
)

// Target holds the resolved paths the launcher validates and hands off to.
// All paths are absolute.
type Target struct {
	// BaseDir is the root of the project tree
	BaseDir string
	// EnvironmentDir is the virtual environment directory, which must
	// pre-exist
	EnvironmentDir string
	// Interpreter is the Python executable inside the environment
	Interpreter string
	// Application is the entry point file handed to the interpreter
	Application string
}

// New resolves a Target against the given base directory
func New(baseDir string) *Target {
	envDir := filepath.Join(baseDir, constants.EnvironmentDirName)
	return &Target{
		BaseDir:        baseDir,
		EnvironmentDir: envDir,
		Interpreter:    interpreterPath(envDir),
		Application:    filepath.Join(baseDir, constants.EntryPointFileName),
	}
}

// NewFromExecutable resolves a Target against the directory holding the
// launcher binary, mirroring how a launch script resolves paths against its
// own location.
func NewFromExecutable() (*Target, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, errs.Wrap(err, "Could not detect executable path")
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, errs.Wrap(err, "Could not resolve executable path %s", exe)
	}

	return New(filepath.Dir(resolved)), nil
}
