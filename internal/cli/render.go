package cli

import (
	"bytes"
	"fmt"

	"github.com/coronalabs/nativebuild/internal/buildconf"
	"github.com/coronalabs/nativebuild/internal/platform"
	"github.com/spf13/cobra"
)

var renderOutput string

func init() {
	renderCmd.Flags().StringVar(&renderOutput, "output", "", "Write the script to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the equivalent build.gradle.kts",
	Long: `Render the top-level Gradle Kotlin script for the resolved configuration.
The native SDK directory is emitted as the OS-conditional expression so the
script works on any host.

  nativebuild render --output build.gradle.kts`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig()
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := buildconf.Render(&buf, cfg); err != nil {
			return err
		}

		if renderOutput == "" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := platform.WriteFileAtomic(renderOutput, buf.Bytes(), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", renderOutput)
		return nil
	},
}
