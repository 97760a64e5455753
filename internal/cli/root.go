package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/coronalabs/nativebuild/internal/branding"
	"github.com/coronalabs/nativebuild/internal/buildconf"
	"github.com/coronalabs/nativebuild/internal/config"
	"github.com/coronalabs/nativebuild/internal/envfile"
	xlog "github.com/coronalabs/nativebuild/internal/log"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Global flags.
var (
	projectDir  string
	projectFile string
	hostOS      string
	envFilePath string
	logLevel    string
	logFormat   string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&projectDir, "project", "C", ".", "Project root directory")
	pf.StringVarP(&projectFile, "file", "f", "", "Project file (default <project>/"+branding.ProjectFile()+")")
	pf.StringVar(&hostOS, "os", "", "Host OS name override used to resolve the native SDK root")
	pf.StringVar(&envFilePath, "env-file", "", "A .env file consulted before the process environment")
	pf.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "", "Log format (console, json)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` evaluates the build configuration of a Corona native Android plugin:
the ordered dependency repositories, the pinned buildscript classpath and the
native SDK root, and runs the project's clean task.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level := logLevel
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		format := logFormat
		if format == "" {
			format = config.Get(config.KeyLogFormat)
		}
		xlog.Configure(xlog.Config{
			Level:  level,
			Output: cmd.ErrOrStderr(),
			JSON:   strings.EqualFold(format, "json"),
		})
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// resolvedOS returns the --os flag, falling back to the user setting.
// An empty result lets buildconf detect the host.
func resolvedOS() string {
	if hostOS != "" {
		return hostOS
	}
	return config.Get(config.KeyOS)
}

func resolvedEnvFile() string {
	if envFilePath != "" {
		return envFilePath
	}
	return config.Get(config.KeyEnvFile)
}

// envLookups returns the env-file entries (nil when no file is configured)
// and the combined lookup used for resolution.
func envLookups() (entries []envfile.Entry, combined envfile.LookupFunc, err error) {
	path := resolvedEnvFile()
	if path == "" {
		return nil, os.LookupEnv, nil
	}
	entries, err = envfile.ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	return entries, envfile.Chain(envfile.Map(entries), os.LookupEnv), nil
}

// loadBuildConfig evaluates the build configuration once for the invocation.
func loadBuildConfig() (buildconf.Config, error) {
	_, lookup, err := envLookups()
	if err != nil {
		return buildconf.Config{}, err
	}
	return buildconf.Load(buildconf.Options{
		ProjectDir:  projectDir,
		ProjectFile: projectFile,
		OS:          resolvedOS(),
		Lookup:      lookup,
	})
}
