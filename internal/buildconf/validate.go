package buildconf

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/Masterminds/semver/v3"
)

// Validate checks the invariants every resolved Config must hold: the
// standard registries lead the project set in fixed order, repository names
// are unique, remote URLs are https and every classpath version is a valid
// semantic version. All violations are reported together.
func (c Config) Validate() error {
	var errs []error

	if c.NativeRoot == "" {
		errs = append(errs, ErrNativeRootUnset)
	}
	if c.BuildDir == "" {
		errs = append(errs, errors.New("build directory is empty"))
	}

	errs = append(errs, checkPrefix("buildscript repositories", c.Buildscript, BuildscriptRepositories())...)
	errs = append(errs, checkPrefix("repositories", c.Repositories, StandardRepositories())...)
	errs = append(errs, checkRepositories("buildscript repositories", c.Buildscript)...)
	errs = append(errs, checkRepositories("repositories", c.Repositories)...)

	if want := len(DefaultClasspath()); len(c.Classpath) != want {
		errs = append(errs, fmt.Errorf("classpath has %d entries, want %d", len(c.Classpath), want))
	}
	for _, e := range c.Classpath {
		if e.Group == "" || e.Artifact == "" {
			errs = append(errs, fmt.Errorf("classpath entry %q: missing group or artifact", e.Coordinate()))
			continue
		}
		if _, err := semver.StrictNewVersion(e.Version); err != nil {
			errs = append(errs, fmt.Errorf("classpath entry %s: version %q: %w", e.Coordinate(), e.Version, err))
		}
	}

	return errors.Join(errs...)
}

func checkPrefix(label string, got, want RepositorySet) []error {
	if len(got) < len(want) {
		return []error{fmt.Errorf("%s: expected at least %d entries, got %d", label, len(want), len(got))}
	}
	var errs []error
	for i, w := range want {
		g := got[i]
		if g.Kind != w.Kind || g.URL != w.URL {
			errs = append(errs, fmt.Errorf("%s[%d]: expected %s %s, got %s %s", label, i, w.Kind, w.URL, g.Kind, g.URL))
		}
	}
	return errs
}

func checkRepositories(label string, set RepositorySet) []error {
	var errs []error
	seen := make(map[string]bool, len(set))
	for i, r := range set {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("%s[%d]: empty name", label, i))
		} else if seen[r.Name] {
			errs = append(errs, fmt.Errorf("%s[%d]: duplicate name %q", label, i, r.Name))
		}
		seen[r.Name] = true

		if r.Kind == KindFlatDir {
			if len(r.Dirs) == 0 {
				errs = append(errs, fmt.Errorf("%s[%d] %s: flatDir without directories", label, i, r.Name))
			}
			continue
		}
		u, err := url.Parse(r.URL)
		if err != nil || u.Scheme != "https" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s[%d] %s: invalid https URL %q", label, i, r.Name, r.URL))
		}
	}
	return errs
}
