package buildconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coronalabs/nativebuild/internal/branding"
	"github.com/coronalabs/nativebuild/internal/envfile"
	xlog "github.com/coronalabs/nativebuild/internal/log"
	"github.com/coronalabs/nativebuild/internal/platform"
)

// Options controls a single configuration evaluation.
type Options struct {
	// ProjectDir is the root project directory. Defaults to the working directory.
	ProjectDir string
	// ProjectFile is an explicit project file path. When empty, the branding
	// default (nativebuild.yaml) is read from ProjectDir if it exists.
	ProjectFile string
	// OS overrides the detected host OS name.
	OS string
	// Lookup resolves environment variables. Defaults to os.LookupEnv.
	Lookup envfile.LookupFunc
}

// Load evaluates the build configuration. It fails fast with a
// *MissingEnvError when the native SDK root cannot be resolved and with an
// *InvalidProjectError when the project file violates the schema.
func Load(opts Options) (Config, error) {
	logger := xlog.WithComponent("buildconf")

	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolving project directory: %w", err)
	}

	osName := opts.OS
	if osName == "" {
		osName = platform.OSName()
	}

	pf, err := loadProjectFile(projectDir, opts.ProjectFile)
	if err != nil {
		return Config{}, err
	}

	root, err := ResolveNativeRoot(osName, opts.Lookup)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OS:           osName,
		ProjectDir:   projectDir,
		BuildDir:     resolveBuildDir(projectDir, pf.BuildDir),
		NativeRoot:   root,
		Buildscript:  BuildscriptRepositories(),
		Repositories: projectRepositories(root, pf.Repositories),
		Classpath:    DefaultClasspath(),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid build configuration: %w", err)
	}

	logger.Debug().
		Str("os", cfg.OS).
		Str("native_root", cfg.NativeRoot).
		Str("build_dir", cfg.BuildDir).
		Strs("repositories", cfg.Repositories.Names()).
		Msg("build configuration resolved")

	return cfg, nil
}

// loadProjectFile returns an empty ProjectFile when no explicit path was given
// and the default file is absent.
func loadProjectFile(projectDir, explicit string) (*ProjectFile, error) {
	path := explicit
	if path == "" {
		path = filepath.Join(projectDir, branding.ProjectFile())
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return &ProjectFile{}, nil
		}
	}

	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating project file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &InvalidProjectError{Path: path, Issues: result.Issues}
	}

	return parseProject(data, path)
}

func resolveBuildDir(projectDir, dir string) string {
	if dir == "" {
		dir = DefaultBuildDir
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(projectDir, dir)
}

// projectRepositories appends project file extras between the standard
// registries and the native flat directories.
func projectRepositories(nativeRoot string, extras []ExtraRepository) RepositorySet {
	set := StandardRepositories()
	for _, e := range extras {
		set = append(set, Repository{Name: e.Name, Kind: KindMaven, URL: e.URL})
	}
	return append(set, Repository{
		Name: NativeRepoName,
		Kind: KindFlatDir,
		Dirs: NativeFlatDirs(nativeRoot),
	})
}
