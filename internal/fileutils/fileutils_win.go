//go:build windows
// +build windows

package fileutils

import (
	"os"
	"path/filepath"
	"strings"
)

// IsExecutable determines if the file at the given path is executable. On
// Windows this is decided by extension, not by permission bits.
func IsExecutable(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".exe" {
		return true
	}

	pathExts := strings.Split(os.Getenv("PATHEXT"), ";")
	for _, pe := range pathExts {
		// pathext entries have `.` and are capitalized
		if ext == strings.ToLower(pe) {
			return true
		}
	}
	return false
}
