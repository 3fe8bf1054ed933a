//go:build !windows
// +build !windows

package fileutils

import "github.com/phayes/permbits"

// IsExecutable determines if the file at the given path has any execute
// permissions. This function does not care whether the current user has
// enough privilege to execute the file.
func IsExecutable(path string) bool {
	bits, err := permbits.Stat(path)
	return err == nil && (bits.UserExecute() || bits.GroupExecute() || bits.OtherExecute())
}
