// Package constants holds the compiled-in names and values the launcher
// operates on. None of these are runtime configurable.
package constants

// LauncherName is the name of our binary
const LauncherName = "venvexec"

// EnvironmentDirName is the name of the virtual environment directory,
// relative to the base directory
const EnvironmentDirName = "venv"

// EntryPointFileName is the name of the application entry point, relative to
// the base directory
const EntryPointFileName = "app.py"

// VerboseEnvVarName is the env var that enables debug logging when "true"
const VerboseEnvVarName = "VENVEXEC_VERBOSE"

// VirtualEnvVarName is the conventional marker variable identifying the
// active Python virtual environment to child processes
const VirtualEnvVarName = "VIRTUAL_ENV"

// ActivatedIDEnvVarName is the env var holding a unique ID for this
// activation
const ActivatedIDEnvVarName = "VENVEXEC_ACTIVATED_ID"

// PythonHomeEnvVarName is stripped from the environment on activation, same
// as a regular venv activate script would
const PythonHomeEnvVarName = "PYTHONHOME"

// LibraryPathEnvVarName is the dynamic loader search path on Linux
const LibraryPathEnvVarName = "LD_LIBRARY_PATH"

// SharedLibExtraDir is a site-packages subdirectory whose shared libraries
// must be resolvable before the interpreter starts (Milvus Lite ships
// libknowhere and friends outside the default loader path)
const SharedLibExtraDir = "milvus_lite/lib"

// ValidationFailedExitCode is used when one of the launch preconditions fails
const ValidationFailedExitCode = 1
