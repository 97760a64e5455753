// Package clean implements the project's clean task: removing the build
// output directory. Removal is idempotent and refuses targets that are not
// strictly inside the project directory.
package clean

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	xlog "github.com/coronalabs/nativebuild/internal/log"
	"github.com/spf13/afero"
)

// ErrUnsafeTarget is returned for targets the cleaner refuses to delete.
var ErrUnsafeTarget = errors.New("refusing to delete unsafe target")

// Result describes what a clean run did.
type Result struct {
	Dir     string
	Existed bool
	Removed bool
	Files   int   // regular files removed (or that would be, on a dry run)
	Bytes   int64 // total size of those files
	DryRun  bool
}

// Cleaner deletes build output directories under a project root.
type Cleaner struct {
	FS         afero.Fs
	ProjectDir string
	DryRun     bool
}

// New returns a Cleaner backed by the OS filesystem.
func New(projectDir string) *Cleaner {
	return &Cleaner{FS: afero.NewOsFs(), ProjectDir: projectDir}
}

// Clean removes dir and everything below it. A missing directory is not an error.
func (c *Cleaner) Clean(dir string) (Result, error) {
	logger := xlog.WithComponent("clean")

	target, err := c.checkTarget(dir)
	if err != nil {
		return Result{Dir: dir}, err
	}
	res := Result{Dir: target, DryRun: c.DryRun}

	info, err := c.FS.Stat(target)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug().Str("dir", target).Msg("nothing to clean")
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("inspecting %s: %w", target, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("%w: %s is not a directory", ErrUnsafeTarget, target)
	}
	res.Existed = true

	err = afero.Walk(c.FS, target, func(_ string, fi fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if fi.Mode().IsRegular() {
			res.Files++
			res.Bytes += fi.Size()
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("scanning %s: %w", target, err)
	}

	if c.DryRun {
		return res, nil
	}

	if err := c.FS.RemoveAll(target); err != nil {
		return res, fmt.Errorf("removing %s: %w", target, err)
	}
	res.Removed = true

	logger.Info().Str("dir", target).Int("files", res.Files).Int64("bytes", res.Bytes).Msg("build directory removed")
	return res, nil
}

// checkTarget returns the cleaned absolute target or ErrUnsafeTarget when it
// is empty, a filesystem root, or not strictly inside the project directory.
func (c *Cleaner) checkTarget(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("%w: empty path", ErrUnsafeTarget)
	}
	if strings.TrimSpace(c.ProjectDir) == "" {
		return "", fmt.Errorf("%w: project directory is not set", ErrUnsafeTarget)
	}

	target, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	project, err := filepath.Abs(c.ProjectDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", c.ProjectDir, err)
	}

	if isRoot(target) {
		return "", fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeTarget, target)
	}

	rel, err := filepath.Rel(project, target)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is not inside project %s", ErrUnsafeTarget, target, project)
	}
	return target, nil
}

func isRoot(p string) bool {
	return filepath.Dir(p) == p
}
