package buildconf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func copyTestdata(t *testing.T, name, dir string) string {
	t.Helper()
	data, err := os.ReadFile(testPath(name))
	if err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "nativebuild.yaml")
	if err := os.WriteFile(dst, data, 0644); err != nil {
		t.Fatal(err)
	}
	return dst
}

func TestLoad_Defaults(t *testing.T) {
	project := t.TempDir()

	cfg, err := Load(Options{
		ProjectDir: project,
		OS:         "darwin",
		Lookup:     lookupOf("HOME", "/Users/dev"),
	})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	wantNames := []string{"google", "jcenter", "aa-sdk", "corona-native"}
	if diff := cmp.Diff(wantNames, cfg.Repositories.Names()); diff != "" {
		t.Errorf("repository order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"google", "jcenter"}, cfg.Buildscript.Names()); diff != "" {
		t.Errorf("buildscript order mismatch (-want +got):\n%s", diff)
	}
	if cfg.Repositories[2].URL != CustomRepoURL {
		t.Errorf("custom repo URL = %q", cfg.Repositories[2].URL)
	}

	wantDirs := []string{
		"/Users/dev/Library/Application Support/Corona/Native/Corona/android/lib/gradle",
		"/Users/dev/Library/Application Support/Corona/Native/Corona/android/lib/Corona/libs",
	}
	if diff := cmp.Diff(wantDirs, cfg.Repositories.FlatDirs()); diff != "" {
		t.Errorf("flat dirs mismatch (-want +got):\n%s", diff)
	}
	if cfg.BuildDir != filepath.Join(project, "build") {
		t.Errorf("BuildDir = %q, want %q", cfg.BuildDir, filepath.Join(project, "build"))
	}
}

func TestLoad_ClasspathPinned(t *testing.T) {
	cfg, err := Load(Options{ProjectDir: t.TempDir(), OS: "linux", Lookup: lookupOf("HOME", "/home/dev")})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"org.jetbrains.kotlin:kotlin-gradle-plugin:1.3.70",
		"com.android.tools.build:gradle:4.2.1",
		"com.beust:klaxon:5.0.1",
	}
	got := make([]string, len(cfg.Classpath))
	for i, e := range cfg.Classpath {
		got[i] = e.Coordinate()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("classpath mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Deterministic(t *testing.T) {
	opts := Options{ProjectDir: t.TempDir(), OS: "windows", Lookup: lookupOf("CORONA_ROOT", `C:\Corona`)}

	a, err := Load(opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Load(opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("two evaluations differ (-first +second):\n%s", diff)
	}
	if a.NativeRoot != `C:\Corona` {
		t.Errorf("NativeRoot = %q", a.NativeRoot)
	}
}

func TestLoad_ProjectFileExtrasAppend(t *testing.T) {
	project := t.TempDir()
	copyTestdata(t, "valid-project.yaml", project)

	cfg, err := Load(Options{ProjectDir: project, OS: "linux", Lookup: lookupOf("HOME", "/home/dev")})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{"google", "jcenter", "aa-sdk", "internal-releases", "internal-snapshots", "corona-native"}
	if diff := cmp.Diff(want, cfg.Repositories.Names()); diff != "" {
		t.Errorf("repository order mismatch (-want +got):\n%s", diff)
	}
	if cfg.BuildDir != filepath.Join(project, "out", "gradle") {
		t.Errorf("BuildDir = %q", cfg.BuildDir)
	}
}

func TestLoad_ExplicitProjectFile(t *testing.T) {
	cfg, err := Load(Options{
		ProjectDir:  t.TempDir(),
		ProjectFile: testPath("valid-project.yaml"),
		OS:          "linux",
		Lookup:      lookupOf("HOME", "/home/dev"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Repositories) != 6 {
		t.Errorf("expected 6 repositories, got %d", len(cfg.Repositories))
	}
}

func TestLoad_ExplicitProjectFileMissing(t *testing.T) {
	_, err := Load(Options{
		ProjectDir:  t.TempDir(),
		ProjectFile: testPath("nonexistent.yaml"),
		OS:          "linux",
		Lookup:      lookupOf("HOME", "/home/dev"),
	})
	if err == nil {
		t.Fatal("expected error for missing explicit project file")
	}
}

func TestLoad_InvalidProjectFile(t *testing.T) {
	project := t.TempDir()
	copyTestdata(t, "invalid-http-url.yaml", project)

	_, err := Load(Options{ProjectDir: project, OS: "linux", Lookup: lookupOf("HOME", "/home/dev")})
	var invalid *InvalidProjectError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidProjectError, got %v", err)
	}
	if len(invalid.Issues) == 0 {
		t.Error("expected issues on InvalidProjectError")
	}
}

func TestLoad_DuplicateRepositoryName(t *testing.T) {
	project := t.TempDir()
	copyTestdata(t, "duplicate-name.yaml", project)

	_, err := Load(Options{ProjectDir: project, OS: "linux", Lookup: lookupOf("HOME", "/home/dev")})
	if err == nil {
		t.Fatal("expected duplicate repository name to be rejected")
	}
}

func TestLoad_MissingEnvironment(t *testing.T) {
	for _, osName := range []string{"windows", "darwin", "linux"} {
		t.Run(osName, func(t *testing.T) {
			cfg, err := Load(Options{ProjectDir: t.TempDir(), OS: osName, Lookup: lookupOf()})
			if !errors.Is(err, ErrNativeRootUnset) {
				t.Fatalf("expected ErrNativeRootUnset, got %v", err)
			}
			if cfg.NativeRoot != "" {
				t.Errorf("NativeRoot = %q, want empty", cfg.NativeRoot)
			}
		})
	}
}
