package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/coronalabs/nativebuild/internal/buildconf"
	"github.com/coronalabs/nativebuild/internal/platform"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	resolveFormat string
	resolveOutput string
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "F", "text", "Output format: text, json or yaml")
	resolveCmd.Flags().StringVar(&resolveOutput, "output", "", "Write the result to a file instead of stdout")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved repositories, classpath and native SDK root",
	Long: `Evaluate the build configuration and print it.

  nativebuild resolve                 # human-readable tables
  nativebuild resolve -F json         # machine-readable
  nativebuild resolve --os windows --env-file ci.env`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadBuildConfig()
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if err := writeResolved(&buf, cfg, resolveFormat); err != nil {
			return err
		}

		if resolveOutput != "" {
			if err := platform.WriteFileAtomic(resolveOutput, buf.Bytes(), 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", resolveOutput)
			return nil
		}
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	},
}

func writeResolved(w io.Writer, cfg buildconf.Config, format string) error {
	switch strings.ToLower(format) {
	case "json":
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling configuration: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml", "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling configuration: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "text", "":
		return writeResolvedText(w, cfg)
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func writeResolvedText(w io.Writer, cfg buildconf.Config) error {
	fmt.Fprintf(w, "OS:          %s\n", cfg.OS)
	fmt.Fprintf(w, "Native root: %s\n", cfg.NativeRoot)
	fmt.Fprintf(w, "Build dir:   %s\n\n", cfg.BuildDir)

	fmt.Fprintln(w, "Buildscript repositories:")
	fmt.Fprintln(w, repositoryTable(cfg.Buildscript))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Repositories:")
	fmt.Fprintln(w, repositoryTable(cfg.Repositories))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Classpath:")
	table := uitable.New()
	table.AddRow("GROUP", "ARTIFACT", "VERSION")
	for _, e := range cfg.Classpath {
		table.AddRow(e.Group, e.Artifact, e.Version)
	}
	_, err := fmt.Fprintln(w, table)
	return err
}

func repositoryTable(set buildconf.RepositorySet) *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = 120
	table.Wrap = true
	table.AddRow("#", "NAME", "KIND", "LOCATION")
	for i, r := range set {
		location := r.URL
		if r.Kind == buildconf.KindFlatDir {
			location = strings.Join(r.Dirs, ", ")
		}
		table.AddRow(i+1, r.Name, string(r.Kind), location)
	}
	return table
}
