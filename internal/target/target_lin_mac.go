//go:build !windows
// +build !windows

package target

import "path/filepath"

// BinDirName is the executables directory inside a POSIX virtual environment
const BinDirName = "bin"

func interpreterPath(envDir string) string {
	return filepath.Join(envDir, BinDirName, "python3")
}
