package cli

import (
	"fmt"

	"github.com/coronalabs/nativebuild/internal/clean"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

var cleanDryRun bool

func init() {
	cleanCmd.Flags().BoolVarP(&cleanDryRun, "dry-run", "n", false, "Report what would be deleted without deleting it")
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the project's build output directory",
	Long: `Delete the build directory (<project>/build unless the project file sets
build_dir). Cleaning a directory that does not exist succeeds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig()
		if err != nil {
			return err
		}

		c := clean.New(cfg.ProjectDir)
		c.DryRun = cleanDryRun

		res, err := c.Clean(cfg.BuildDir)
		if err != nil {
			return fmt.Errorf("clean: %w", err)
		}

		out := cmd.OutOrStdout()
		size := units.HumanSize(float64(res.Bytes))
		switch {
		case !res.Existed:
			fmt.Fprintf(out, "Nothing to clean at %s\n", res.Dir)
		case res.DryRun:
			fmt.Fprintf(out, "Would remove %s (%d file(s), %s)\n", res.Dir, res.Files, size)
		default:
			fmt.Fprintf(out, "Removed %s (%d file(s), %s)\n", res.Dir, res.Files, size)
		}
		return nil
	},
}
