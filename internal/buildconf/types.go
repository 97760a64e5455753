package buildconf

import (
	"fmt"
	"strings"
)

// RepositoryKind identifies how a repository is declared in Gradle.
type RepositoryKind string

const (
	KindGoogle  RepositoryKind = "google"
	KindJCenter RepositoryKind = "jcenter"
	KindMaven   RepositoryKind = "maven"
	KindFlatDir RepositoryKind = "flatDir"
)

// Repository is a single dependency source.
type Repository struct {
	Name string         `json:"name" yaml:"name"`
	Kind RepositoryKind `json:"kind" yaml:"kind"`
	URL  string         `json:"url,omitempty" yaml:"url,omitempty"`
	Dirs []string       `json:"dirs,omitempty" yaml:"dirs,omitempty"`
}

// IsRemote reports whether the repository is fetched over the network.
func (r Repository) IsRemote() bool {
	return r.Kind != KindFlatDir
}

// RepositorySet is an ordered list of repositories, consulted first to last.
type RepositorySet []Repository

// Names returns the repository names in order.
func (s RepositorySet) Names() []string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = r.Name
	}
	return names
}

// FlatDirs returns every local directory declared by flatDir repositories.
func (s RepositorySet) FlatDirs() []string {
	var dirs []string
	for _, r := range s {
		if r.Kind == KindFlatDir {
			dirs = append(dirs, r.Dirs...)
		}
	}
	return dirs
}

// ClasspathEntry is a versioned buildscript dependency. Kotlin holds the
// module name for entries declared with the kotlin("...") shorthand, e.g.
// "gradle-plugin" for org.jetbrains.kotlin:kotlin-gradle-plugin.
type ClasspathEntry struct {
	Group    string `json:"group" yaml:"group"`
	Artifact string `json:"artifact" yaml:"artifact"`
	Version  string `json:"version" yaml:"version"`
	Kotlin   string `json:"kotlin,omitempty" yaml:"kotlin,omitempty"`
}

// Coordinate returns the Maven coordinate "group:artifact:version".
func (c ClasspathEntry) Coordinate() string {
	return c.Group + ":" + c.Artifact + ":" + c.Version
}

// ParseCoordinate splits a "group:artifact:version" string.
func ParseCoordinate(s string) (ClasspathEntry, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ClasspathEntry{}, fmt.Errorf("coordinate %q: expected group:artifact:version", s)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return ClasspathEntry{}, fmt.Errorf("coordinate %q: empty component", s)
		}
	}
	return ClasspathEntry{Group: parts[0], Artifact: parts[1], Version: parts[2]}, nil
}

// Config is the fully resolved build configuration. It is computed once by
// Load and passed by value; nothing mutates it afterwards.
type Config struct {
	OS           string           `json:"os" yaml:"os"`
	ProjectDir   string           `json:"project_dir" yaml:"project_dir"`
	BuildDir     string           `json:"build_dir" yaml:"build_dir"`
	NativeRoot   string           `json:"native_root" yaml:"native_root"`
	Buildscript  RepositorySet    `json:"buildscript_repositories" yaml:"buildscript_repositories"`
	Repositories RepositorySet    `json:"repositories" yaml:"repositories"`
	Classpath    []ClasspathEntry `json:"classpath" yaml:"classpath"`
}
