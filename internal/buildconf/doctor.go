package buildconf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

var (
	tagOK   = color.New(color.FgGreen).Sprint("[ OK ]")
	tagMiss = color.New(color.FgYellow).Sprint("[MISS]")
	tagFail = color.New(color.FgRed).Sprint("[FAIL]")
)

// CheckNative reports whether each native flat directory exists and returns
// the number of directories that are missing or unusable.
func CheckNative(w io.Writer, cfg Config) int {
	fmt.Fprintln(w, "Native SDK check:")
	fmt.Fprintf(w, "  root: %s\n", cfg.NativeRoot)

	problems := 0
	for _, dir := range cfg.Repositories.FlatDirs() {
		info, err := os.Stat(dir)
		switch {
		case err != nil:
			fmt.Fprintf(w, "  %s %s\n", tagMiss, dir)
			problems++
		case !info.IsDir():
			fmt.Fprintf(w, "  %s %s is not a directory\n", tagFail, dir)
			problems++
		default:
			fmt.Fprintf(w, "  %s %s (%d archive(s))\n", tagOK, dir, countArchives(dir))
		}
	}
	return problems
}

// countArchives counts .aar and .jar files directly inside dir.
func countArchives(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !e.IsDir() && (ext == ".aar" || ext == ".jar") {
			n++
		}
	}
	return n
}
