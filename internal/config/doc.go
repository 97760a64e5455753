// Package config manages user-level settings stored at ~/.nativebuild/config.yaml.
// Settings can also be supplied as NATIVEBUILD_* environment variables, which
// take precedence over the file.
package config
