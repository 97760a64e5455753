package buildconf

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"
)

// The native directory is rendered as the OS-conditional expression rather
// than the resolved path so the generated script stays portable across hosts.
var gradleTemplate = template.Must(template.New("build.gradle.kts").Funcs(template.FuncMap{
	"classpath": renderClasspath,
}).Parse(`buildscript {
    repositories {
{{- range .Buildscript}}
        {{.Kind}}()
{{- end}}
    }
    dependencies {
{{- range .Classpath}}
        classpath({{classpath .}})
{{- end}}
    }
}

allprojects {
    repositories {
{{- range .Repositories}}
{{- if eq .Kind "google" "jcenter"}}
        {{.Kind}}()
{{- else if eq .Kind "maven"}}
        maven(url = "{{.URL}}")
{{- end}}
{{- end}}

        val nativeDir = if (System.getProperty("os.name").toLowerCase().contains("windows")) {
            System.getenv("{{.WindowsEnv}}")
        } else {
            "${System.getenv("{{.UnixEnv}}")}{{.UnixSuffix}}"
        }
        flatDir {
            dirs({{range $i, $d := .FlatDirs}}{{if $i}}, {{end}}"$nativeDir/{{$d}}"{{end}})
        }
    }
}

tasks.register<Delete>("clean") {
    delete({{.BuildDirExpr}})
}
`))

type renderData struct {
	Config
	WindowsEnv   string
	UnixEnv      string
	UnixSuffix   string
	FlatDirs     []string
	BuildDirExpr string
}

// Render writes the build.gradle.kts equivalent of cfg to w.
func Render(w io.Writer, cfg Config) error {
	data := renderData{
		Config:       cfg,
		WindowsEnv:   WindowsRootEnv,
		UnixEnv:      UnixHomeEnv,
		UnixSuffix:   UnixNativeSuffix,
		FlatDirs:     []string{nativeGradleLibDir, nativeCoronaLibDir},
	}
	expr, err := buildDirExpr(cfg)
	if err != nil {
		return err
	}
	data.BuildDirExpr = expr

	if err := gradleTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering build.gradle.kts: %w", err)
	}
	return nil
}

func renderClasspath(e ClasspathEntry) string {
	if e.Kotlin != "" {
		return fmt.Sprintf("kotlin(%q, version = %q)", e.Kotlin, e.Version)
	}
	return fmt.Sprintf("%q", e.Coordinate())
}

// buildDirExpr returns the Kotlin expression naming the directory the clean
// task deletes. Directories inside the project are written relative to the
// root project; anything outside it keeps its absolute path.
func buildDirExpr(cfg Config) (string, error) {
	if cfg.BuildDir == "" {
		return "rootProject.buildDir", nil
	}
	rel, err := filepath.Rel(cfg.ProjectDir, cfg.BuildDir)
	switch {
	case err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)):
		return fmt.Sprintf("rootProject.file(%q)", filepath.ToSlash(cfg.BuildDir)), nil
	case rel == ".":
		return "", fmt.Errorf("build directory %s is the project directory", cfg.BuildDir)
	case filepath.ToSlash(rel) == DefaultBuildDir:
		return "rootProject.buildDir", nil
	}
	return fmt.Sprintf("rootProject.file(%q)", filepath.ToSlash(rel)), nil
}
