package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "nativebuild" {
		t.Errorf("CLIName() = %q, want %q", got, "nativebuild")
	}
	if got := ProjectFile(); got != "nativebuild.yaml" {
		t.Errorf("ProjectFile() = %q, want %q", got, "nativebuild.yaml")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("log_level"); got != "NATIVEBUILD_LOG_LEVEL" {
		t.Errorf("EnvVar(log_level) = %q, want NATIVEBUILD_LOG_LEVEL", got)
	}
}
