package buildconf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/coronalabs/nativebuild/internal/envfile"
)

// Environment variables that locate the native SDK installation.
const (
	WindowsRootEnv = "CORONA_ROOT"
	UnixHomeEnv    = "HOME"
)

// UnixNativeSuffix is appended to $HOME on non-Windows hosts.
const UnixNativeSuffix = "/Library/Application Support/Corona/Native/"

// ErrNativeRootUnset is matched by every native root resolution failure.
var ErrNativeRootUnset = errors.New("native SDK root is not set")

// MissingEnvError names the variable that the selected OS branch needed.
type MissingEnvError struct {
	Var string
	OS  string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("resolving native SDK root on %s: environment variable %s is not set", e.OS, e.Var)
}

func (e *MissingEnvError) Unwrap() error { return ErrNativeRootUnset }

// IsWindows reports whether osName names a Windows host. Matching is a
// case-insensitive substring test so both "windows" and "Windows 10" qualify.
func IsWindows(osName string) bool {
	return strings.Contains(strings.ToLower(osName), "windows")
}

// NativeEnvVar returns the variable consulted for osName.
func NativeEnvVar(osName string) string {
	if IsWindows(osName) {
		return WindowsRootEnv
	}
	return UnixHomeEnv
}

// ResolveNativeRoot picks exactly one branch based on osName: on Windows the
// root is the value of CORONA_ROOT, elsewhere it is $HOME followed by
// UnixNativeSuffix. A nil lookup reads the process environment.
func ResolveNativeRoot(osName string, lookup envfile.LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	name := NativeEnvVar(osName)
	v, ok := lookup(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", &MissingEnvError{Var: name, OS: osName}
	}

	if IsWindows(osName) {
		return v, nil
	}
	return strings.TrimRight(v, "/") + UnixNativeSuffix, nil
}

// NativeFlatDirs returns the two local library directories under root.
func NativeFlatDirs(root string) []string {
	base := strings.TrimRight(root, `/\`)
	return []string{
		base + "/" + nativeGradleLibDir,
		base + "/" + nativeCoronaLibDir,
	}
}
