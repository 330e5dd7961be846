package extractor

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redactyl/extractor/internal/engine"
	"github.com/redactyl/extractor/internal/redact"
)

func init() {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "List the files the report will contain, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, err := basePath()
			if err != nil {
				return err
			}
			gcfg, lcfg := loadConfigs(abs, cmd.ErrOrStderr())
			specs := pickFiles(lcfg, gcfg)
			if specs == nil {
				specs = engine.DefaultFiles()
			}
			globs := pickStrings(lcfg.RedactGlobs, gcfg.RedactGlobs)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"#", "PATH", "DESCRIPTION", "REDACT"})
			for i, s := range specs {
				_ = table.Append([]string{strconv.Itoa(i + 1), s.Path, s.Description, yesNo(redact.Wanted(s, globs))})
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
