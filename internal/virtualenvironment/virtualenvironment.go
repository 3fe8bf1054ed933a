package virtualenvironment

import (
	"path/filepath"
	rt "runtime"
	"sort"

	"github.com/google/uuid"

	"github.com/venvexec/cli/internal/constants"
	"github.com/venvexec/cli/internal/fileutils"
	"github.com/venvexec/cli/internal/logging"
	"github.com/venvexec/cli/internal/target"
)

// OS is used by tests to spoof a different value
var OS = rt.GOOS

// VirtualEnvironment virtualizes a pre-existing Python virtual environment:
// it knows how to express the environment's activation as a set of
// environment variable updates for a child process. It never creates or
// modifies anything on disk.
type VirtualEnvironment struct {
	target       *target.Target
	activationID string
}

// New creates a VirtualEnvironment for the given target
func New(t *target.Target) *VirtualEnvironment {
	return &VirtualEnvironment{
		target:       t,
		activationID: uuid.New().String(),
	}
}

// ActivationID returns the unique identifier related to the activated
// instance
func (v *VirtualEnvironment) ActivationID() string {
	return v.activationID
}

// BinDir returns the directory holding the environment's executables
func (v *VirtualEnvironment) BinDir() string {
	return filepath.Dir(v.target.Interpreter)
}

// Env returns the environment variable updates that activate the virtual
// environment for the process we hand off to: the environment's bin dir is
// exposed on PATH, the conventional marker variable is set, and any shared
// library directory the application's native dependencies need is exposed on
// the loader path.
//
// PATH and the loader path are updates to be *prepended* to existing values,
// which is the caller's business (see osutils.TransformedEnv).
func (v *VirtualEnvironment) Env() map[string]string {
	env := map[string]string{
		"PATH":                          v.BinDir(),
		constants.VirtualEnvVarName:     v.target.EnvironmentDir,
		constants.ActivatedIDEnvVarName: v.activationID,
	}

	if OS == "linux" {
		if libDir := v.sharedLibDir(); libDir != "" {
			env[constants.LibraryPathEnvVarName] = libDir
		}
	}

	return env
}

// PruneVars lists the variables that must be absent from the activated
// environment. PYTHONHOME would make the isolated interpreter resolve the
// wrong standard library.
func (v *VirtualEnvironment) PruneVars() []string {
	return []string{constants.PythonHomeEnvVarName}
}

// sharedLibDir locates the bundled shared library directory inside the
// environment's site-packages, if any. The directory is versioned by the
// interpreter (lib/python3.X), hence the glob; when multiple versions are
// present the lexically last one wins, matching what the interpreter itself
// would resolve.
func (v *VirtualEnvironment) sharedLibDir() string {
	pattern := filepath.Join(v.sitePackagesPattern(), filepath.FromSlash(constants.SharedLibExtraDir))
	matches, err := filepath.Glob(pattern)
	if err != nil || len(matches) == 0 {
		return ""
	}

	sort.Strings(matches)
	libDir := matches[len(matches)-1]
	if !fileutils.DirExists(libDir) {
		return ""
	}

	logging.Debug("Exposing shared library dir: %s", libDir)
	return libDir
}

func (v *VirtualEnvironment) sitePackagesPattern() string {
	if OS == "windows" {
		return filepath.Join(v.target.EnvironmentDir, "Lib", "site-packages")
	}
	return filepath.Join(v.target.EnvironmentDir, "lib", "python*", "site-packages")
}
