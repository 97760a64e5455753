//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, the Unix native SDK lives under it
	CoronaRoot string // CORONA_ROOT, the Windows native SDK root
	ProjectDir string // A mock plugin project
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so native SDK resolution is sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		CoronaRoot: t.TempDir(),
		ProjectDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("CORONA_ROOT", env.CoronaRoot)

	return env
}

// installNativeSDK creates the flat directories under root with one archive each.
func installNativeSDK(t *testing.T, root string) {
	t.Helper()
	for _, sub := range []string{"Corona/android/lib/gradle", "Corona/android/lib/Corona/libs"} {
		dir := filepath.Join(root, filepath.FromSlash(sub))
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("creating %s: %v", dir, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "Corona.aar"), []byte("aar"), 0644); err != nil {
			t.Fatalf("writing archive: %v", err)
		}
	}
}

// writeProjectFile writes nativebuild.yaml into the project directory.
func writeProjectFile(t *testing.T, projectDir, content string) {
	t.Helper()
	path := filepath.Join(projectDir, "nativebuild.yaml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0644); err != nil {
		t.Fatalf("writing project file: %v", err)
	}
}

// populateBuildDir fills dir with a few build outputs.
func populateBuildDir(t *testing.T, dir string) {
	t.Helper()
	for _, rel := range []string{"outputs/aar/plugin-release.aar", "intermediates/classes.jar", "tmp/kotlin/LuaLoader.class"} {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(rel), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist (err=%v)", path, err)
	}
}
