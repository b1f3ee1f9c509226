// Package cli implements the jhsplit command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roboco-io/jhsplit/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	rootConfigPath string
	rootVerbose    bool
	rootQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "jhsplit <file>",
	Short: "Split an HTML manual into a JavaHelp help set",
	Long: `Split a single HTML manual (docutils output) into a JavaHelp help set.

Every <div class="section"> becomes its own <id>.html file, in-document
links are rewritten to point at the split files, and a JavaHelp map file
(cl1_map.jhm) and table of contents (cl1_toc.xml) are written next to
the input file.

Environment variables:
  JHSPLIT_CONFIG=path   configuration file (default ~/.jhsplit/config.yaml)
  JHSPLIT_VERBOSE=true  verbose output

Examples:
  jhsplit manual.html
  jhsplit manual.html -o help/
  jhsplit manual.html --map manual.jhm --toc manual_toc.xml`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runSplit,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jhsplit %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file path (default ~/.jhsplit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "only print warnings and errors")

	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLoader() (*config.Loader, error) {
	if rootConfigPath != "" {
		return config.NewLoaderWithPath(rootConfigPath), nil
	}
	return config.NewLoader()
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case rootQuiet:
		level = slog.LevelWarn
	case rootVerbose || config.GetEnvBool("JHSPLIT_VERBOSE"):
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
