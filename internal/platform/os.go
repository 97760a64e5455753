package platform

import (
	"os"
	"runtime"
)

// OSName returns the host OS name used to pick the native SDK branch.
func OSName() string {
	return runtime.GOOS
}

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
