package extractor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/redactyl/extractor/internal/config"
	"github.com/redactyl/extractor/internal/engine"
	"github.com/redactyl/extractor/internal/report"
)

var (
	cfgFile  string
	cfgForce bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .extractor.yml listing the default files and options",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgFile, "file", config.LocalNames[0], "config file to write, relative to --path")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	abs, err := basePath()
	if err != nil {
		return err
	}
	target := cfgFile
	if !filepath.IsAbs(target) {
		target = filepath.Join(abs, target)
	}
	if _, err := os.Stat(target); err == nil && !cfgForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}

	output := engine.DefaultOutput
	title := report.DefaultTitle
	project := report.DefaultProject
	cfg := config.FileConfig{
		Output:      &output,
		Title:       &title,
		Project:     &project,
		Files:       engine.DefaultFiles(),
		RedactGlobs: []string{"**/.env", "**/.env.*"},
	}
	b, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(target, b, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "wrote", target)
	return nil
}
