package buildconf

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ProjectFile is the optional nativebuild.yaml in the project directory.
type ProjectFile struct {
	BuildDir     string            `yaml:"build_dir,omitempty" json:"build_dir,omitempty"`
	Repositories []ExtraRepository `yaml:"repositories,omitempty" json:"repositories,omitempty"`
}

// ExtraRepository is a maven repository appended after the standard ones.
type ExtraRepository struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// ParseProjectFile reads and decodes a project file without schema validation.
func ParseProjectFile(path string) (*ProjectFile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseProject(data, path)
}

func parseProject(data []byte, path string) (*ProjectFile, error) {
	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing project file %s: %w", path, err)
	}
	return &pf, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
