//go:build !windows
// +build !windows

package launch

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venvexec/cli/internal/target"
)

const (
	childModeEnvVarName = "VENVEXEC_TEST_HANDOFF_CHILD"
	childBaseEnvVarName = "VENVEXEC_TEST_HANDOFF_BASE"
)

// fakeInterpreter reports what a launched application observes: its argument
// vector, the activation markers and the loader path, then exits 42.
const fakeInterpreter = `#!/bin/sh
echo "PID:$$"
echo "ARGS:$@"
echo "VIRTUAL_ENV:[$VIRTUAL_ENV]"
echo "PYTHONHOME:[$PYTHONHOME]"
echo "PATH:$PATH"
exit 42
`

// TestRunHandsOff runs the full success path, process replacement included,
// by re-executing this test binary as a child that calls Run against a fake
// environment. On success the child's process image becomes the fake
// interpreter, so whatever that script observed and exited with is exactly
// what a launched application would.
func TestRunHandsOff(t *testing.T) {
	if os.Getenv(childModeEnvVarName) == "true" {
		runHandoffChild()
		return
	}

	base := t.TempDir()
	tgt := target.New(base)
	require.NoError(t, os.MkdirAll(filepath.Dir(tgt.Interpreter), 0755))
	require.NoError(t, os.WriteFile(tgt.Interpreter, []byte(fakeInterpreter), 0755))
	require.NoError(t, os.WriteFile(tgt.Application, []byte("print('hi')\n"), 0644))

	cmd := exec.Command(os.Args[0], "-test.run", "^TestRunHandsOff$")
	cmd.Env = append(os.Environ(),
		childModeEnvVarName+"=true",
		childBaseEnvVarName+"="+base,
		"PYTHONHOME=/usr", // must not survive activation
	)

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "child should exit non-zero, got err %v, output:\n%s", err, out)
	assert.Equal(t, 42, exitErr.ExitCode(), "application exit code is the observable exit code")

	output := string(out)
	assert.Contains(t, output, fmt.Sprintf("PID:%d\n", cmd.Process.Pid),
		"the interpreter kept the child's PID: replacement, not a spawn")
	assert.Contains(t, output, "ARGS:"+tgt.Application+" --port 8080",
		"entry point first, launcher arguments verbatim after it")
	assert.Contains(t, output, "VIRTUAL_ENV:["+tgt.EnvironmentDir+"]")
	assert.Contains(t, output, "PYTHONHOME:[]", "PYTHONHOME was pruned")
	assert.Contains(t, output, "PATH:"+filepath.Dir(tgt.Interpreter)+string(os.PathListSeparator),
		"environment bin dir is prepended to PATH")
}

// runHandoffChild never returns on success; Run replaces us with the fake
// interpreter
func runHandoffChild() {
	tgt := target.New(os.Getenv(childBaseEnvVarName))
	err := New().Run(NewParams(tgt), "--port", "8080")
	fmt.Fprintf(os.Stderr, "hand-off returned: %v\n", err)
	os.Exit(3)
}
