//go:build !windows

package platform

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic writes data to path through a temp file that is synced and
// renamed into place, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := renameio.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	// renameio applies perm through the umask; enforce it explicitly.
	return Chmod(path, perm)
}
