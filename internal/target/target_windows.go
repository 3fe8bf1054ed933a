//go:build windows
// +build windows

package target

import "path/filepath"

// BinDirName is the executables directory inside a Windows virtual
// environment
const BinDirName = "Scripts"

func interpreterPath(envDir string) string {
	return filepath.Join(envDir, BinDirName, "python.exe")
}
