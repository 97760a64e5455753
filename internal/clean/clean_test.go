package clean

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

const project = "/work/plugin"

func newMemCleaner(t *testing.T) (*Cleaner, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return &Cleaner{FS: fs, ProjectDir: project}, fs
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestClean_RemovesTree(t *testing.T) {
	c, fs := newMemCleaner(t)
	buildDir := filepath.Join(project, "build")
	writeFile(t, fs, filepath.Join(buildDir, "outputs", "aar", "plugin-release.aar"), "aar!")
	writeFile(t, fs, filepath.Join(buildDir, "tmp", "kotlin-classes", "LuaLoader.class"), "cafebabe")
	writeFile(t, fs, filepath.Join(project, "build.gradle.kts"), "keep me")

	res, err := c.Clean(buildDir)
	if err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if !res.Removed {
		t.Error("Removed = false, want true")
	}
	if res.Files != 2 {
		t.Errorf("Files = %d, want 2", res.Files)
	}
	if res.Bytes != int64(len("aar!")+len("cafebabe")) {
		t.Errorf("Bytes = %d", res.Bytes)
	}

	if exists, _ := afero.DirExists(fs, buildDir); exists {
		t.Error("build directory still exists")
	}
	if exists, _ := afero.Exists(fs, filepath.Join(project, "build.gradle.kts")); !exists {
		t.Error("sibling file was removed")
	}
}

func TestClean_MissingDirIsNoop(t *testing.T) {
	c, _ := newMemCleaner(t)

	for i := 0; i < 2; i++ {
		res, err := c.Clean(filepath.Join(project, "build"))
		if err != nil {
			t.Fatalf("run %d: Clean on missing dir failed: %v", i, err)
		}
		if res.Removed || res.Existed {
			t.Errorf("run %d: unexpected result %+v for a missing directory", i, res)
		}
	}
}

func TestClean_DryRun(t *testing.T) {
	c, fs := newMemCleaner(t)
	c.DryRun = true
	buildDir := filepath.Join(project, "build")
	writeFile(t, fs, filepath.Join(buildDir, "a.txt"), "a")

	res, err := c.Clean(buildDir)
	if err != nil {
		t.Fatal(err)
	}
	if res.Removed || !res.Existed || !res.DryRun || res.Files != 1 {
		t.Errorf("unexpected dry-run result %+v", res)
	}
	if exists, _ := afero.DirExists(fs, buildDir); !exists {
		t.Error("dry run removed the directory")
	}
}

func TestClean_UnsafeTargets(t *testing.T) {
	c, fs := newMemCleaner(t)
	writeFile(t, fs, filepath.Join(project, "build"), "a file, not a dir")

	tests := []struct {
		name string
		dir  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"root", "/"},
		{"project itself", project},
		{"parent", "/work"},
		{"sibling", "/work/other/build"},
		{"escape", project + "/../other"},
		{"regular file", filepath.Join(project, "build")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Clean(tt.dir)
			if !errors.Is(err, ErrUnsafeTarget) {
				t.Errorf("Clean(%q) error = %v, want ErrUnsafeTarget", tt.dir, err)
			}
		})
	}
}

func TestClean_NoProjectDir(t *testing.T) {
	c := &Cleaner{FS: afero.NewMemMapFs()}
	if _, err := c.Clean("/tmp/build"); !errors.Is(err, ErrUnsafeTarget) {
		t.Errorf("expected ErrUnsafeTarget without a project dir, got %v", err)
	}
}

func TestClean_OsFs(t *testing.T) {
	projectDir := t.TempDir()
	c := New(projectDir)
	buildDir := filepath.Join(projectDir, "build")
	writeFile(t, c.FS, filepath.Join(buildDir, "intermediates", "x.jar"), "jar")

	if _, err := c.Clean(buildDir); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	if exists, _ := afero.Exists(c.FS, buildDir); exists {
		t.Error("build directory still exists on disk")
	}
}
