package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/coronalabs/nativebuild/internal/buildconf"
	"github.com/coronalabs/nativebuild/internal/envfile"
	"github.com/coronalabs/nativebuild/internal/platform"
	"github.com/spf13/cobra"
)

var (
	traceEnv   bool
	noRedact   bool
	checkTools bool
)

func init() {
	doctorCmd.Flags().BoolVar(&traceEnv, "trace-env", false, "Show where each native SDK variable was resolved from")
	doctorCmd.Flags().BoolVar(&noRedact, "no-redact", false, "Show traced values without redaction")
	doctorCmd.Flags().BoolVar(&checkTools, "check-tools", false, "Verify java and gradle are on PATH")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the native SDK installation and environment",
	Long:  `Run diagnostic checks on the native SDK directories and the variables used to find them.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if traceEnv {
			if err := runEnvTrace(out); err != nil {
				return err
			}
		}
		if checkTools {
			runToolsCheck(out)
		}

		cfg, err := loadBuildConfig()
		if err != nil {
			fmt.Fprintln(out, "Native SDK check:")
			var missing *buildconf.MissingEnvError
			if errors.As(err, &missing) {
				fmt.Fprintf(out, "  [FAIL] %s is not set; it locates the native SDK on %s\n", missing.Var, missing.OS)
			} else {
				fmt.Fprintf(out, "  [FAIL] %v\n", err)
			}
			return err
		}

		if n := buildconf.CheckNative(out, cfg); n > 0 {
			return fmt.Errorf("%d native SDK directories missing or unusable", n)
		}
		return nil
	},
}

func runEnvTrace(out io.Writer) error {
	entries, _, err := envLookups()
	if err != nil {
		return err
	}

	osName := resolvedOS()
	if osName == "" {
		osName = platform.OSName()
	}
	fmt.Fprintf(out, "Environment trace (%s):\n", osName)

	// The starred variable is the one the OS branch consults. Every other
	// env-file entry follows, since it shadows the process environment too.
	keys := []string{buildconf.WindowsRootEnv, buildconf.UnixHomeEnv}
	seen := map[string]bool{keys[0]: true, keys[1]: true}
	for _, e := range entries {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	selected := buildconf.NativeEnvVar(osName)
	for _, s := range envfile.Trace(keys, envfile.Map(entries), os.LookupEnv) {
		marker := " "
		if s.Key == selected {
			marker = "*"
		}
		if s.Origin == "" {
			fmt.Fprintf(out, "  %s %s: (unset)\n", marker, s.Key)
			continue
		}
		value := s.Value
		if !noRedact {
			value = envfile.RedactValue(s.Key, s.Value)
		}
		fmt.Fprintf(out, "  %s %s=%s [%s]\n", marker, s.Key, value, s.Origin)
	}
	fmt.Fprintln(out)
	return nil
}

func runToolsCheck(out io.Writer) {
	fmt.Fprintln(out, "Tools check:")
	for _, name := range []string{"java", "gradle"} {
		path, err := exec.LookPath(name)
		if err != nil {
			fmt.Fprintf(out, "  [MISS] %s not found\n", name)
			continue
		}
		fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
	}
	fmt.Fprintln(out)
}
