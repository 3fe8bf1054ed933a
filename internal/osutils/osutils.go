package osutils

import (
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/venvexec/cli/internal/logging"
)

const envVarSeparator = "="

// pathListVarNames are environment variables that hold an ordered list of
// paths. Updates to these are prepended rather than replaced, so the updated
// entries win without discarding what the caller already had.
var pathListVarNames = []string{"PATH", "LD_LIBRARY_PATH"}

// CmdExitCode returns the exit code of a command in a platform agnostic way
// taken from https://www.reddit.com/r/golang/comments/1hvvnn/any_better_way_to_do_a_crossplatform_exec_and/caytqvr/
func CmdExitCode(cmd *exec.Cmd) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Could not get exit code, so returning 1 instead (this is non-fatal, but should be resolved), actual error: %v", r)
			code = 128
		}
	}()

	type Status interface {
		ExitStatus() int
	}
	return cmd.ProcessState.Sys().(Status).ExitStatus()
}

// TransformedEnv returns a copy of the current environment with the given
// updates applied. Updates to path-list variables are prepended to the
// existing value; all other updates replace the existing entry or are
// appended. Variable name matching is case-insensitive, as Windows
// environments do not agree on the casing of PATH.
func TransformedEnv(current []string, updates map[string]string) []string {
	env := make([]string, len(current))
	copy(env, current)

	keys := make([]string, 0, len(updates))
	for key := range updates {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := updates[key]
		existing, i, found := getEnvVar(env, key)

		if found && isPathList(key) {
			env[i] = key + envVarSeparator + value + string(os.PathListSeparator) + existing
			continue
		}
		if found {
			env[i] = key + envVarSeparator + value
			continue
		}
		env = append(env, key+envVarSeparator+value)
	}

	return env
}

// PrunedEnv returns a copy of the given environment without the named
// variables. Name matching is case-insensitive.
func PrunedEnv(current []string, names ...string) []string {
	env := make([]string, 0, len(current))
	for _, entry := range current {
		drop := false
		for _, name := range names {
			if strings.HasPrefix(strings.ToLower(entry), strings.ToLower(name+envVarSeparator)) {
				drop = true
				break
			}
		}
		if !drop {
			env = append(env, entry)
		}
	}
	return env
}

// EnvSliceToMap converts an environment slice (as used by os and exec) to a
// map. Later entries win on duplicate names.
func EnvSliceToMap(env []string) map[string]string {
	result := map[string]string{}
	for _, entry := range env {
		kv := strings.SplitN(entry, envVarSeparator, 2)
		if len(kv) != 2 {
			continue
		}
		result[kv[0]] = kv[1]
	}
	return result
}

// getEnvVar returns the value and index of the named environment variable
// from the provided environment slice
func getEnvVar(env []string, name string) (string, int, bool) {
	prefix := strings.ToLower(name + envVarSeparator)
	for i, entry := range env {
		if strings.HasPrefix(strings.ToLower(entry), prefix) {
			return entry[len(prefix):], i, true
		}
	}
	return "", 0, false
}

func isPathList(name string) bool {
	for _, candidate := range pathListVarNames {
		if strings.EqualFold(name, candidate) {
			return true
		}
	}
	return false
}
