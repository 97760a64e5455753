package cli

import (
	"fmt"
	"path/filepath"

	"github.com/coronalabs/nativebuild/internal/branding"
	"github.com/coronalabs/nativebuild/internal/buildconf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a project file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := projectFile
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			path = filepath.Join(projectDir, branding.ProjectFile())
		}
		return runProjectCheck(cmd, path)
	},
}

func runProjectCheck(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project file validation: %s\n", path)

	result, err := buildconf.ValidateProjectFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("project file validation failed: %w", err)
	}

	if result.Valid {
		pf, err := buildconf.ParseProjectFile(path)
		if err != nil {
			fmt.Fprintf(out, "  [ OK ] Valid project file\n")
			return nil
		}
		fmt.Fprintf(out, "  [ OK ] Valid project file (%d extra repositories)\n", len(pf.Repositories))
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return fmt.Errorf("project file %s has %d validation issue(s)", path, len(result.Issues))
}
