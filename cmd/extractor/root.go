package extractor

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagPath    string
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command. Without a subcommand it runs the extraction.
var rootCmd = &cobra.Command{
	Use:           "extractor",
	Short:         "Collect key project files into one report",
	Long:          "extractor reads a fixed list of project files, redacts values in environment files, and writes them to a single text report with a header per file.",
	Args:          cobra.NoArgs,
	RunE:          runExtract,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the extractor CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "base directory containing the project files")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	_ = rootCmd.MarkPersistentFlagDirname("path")
}
