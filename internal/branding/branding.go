// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed so that forks can rename the
// binary, its home directory and its environment prefix without code changes.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	ProjectFile string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "nativebuild",
			DisplayName: "NativeBuild",
			Description: "Build configuration resolver for Corona native Android plugins",
			HomeDir:     ".nativebuild",
			EnvPrefix:   "NATIVEBUILD",
			GoModule:    "github.com/coronalabs/nativebuild",
			ProjectFile: "nativebuild.yaml",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "nativebuild").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nativebuild").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NATIVEBUILD").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// ProjectFile returns the default project file name looked up in the project directory.
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "NATIVEBUILD_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
