package extractor

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redactyl/extractor/internal/audit"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs from the audit log (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			abs, err := basePath()
			if err != nil {
				return err
			}
			records, err := audit.NewAuditLog(abs).LoadHistory()
			if err != nil {
				return fmt.Errorf("no run history for %s (run with --audit first): %w", abs, err)
			}
			if flagHistoryLimit > 0 && len(records) > flagHistoryLimit {
				records = records[:flagHistoryLimit]
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header([]string{"WHEN", "FOUND", "MISSING", "REDACTED", "DURATION", "OUTPUT"})
			for _, r := range records {
				_ = table.Append([]string{
					r.Timestamp.Local().Format(time.DateTime),
					strconv.Itoa(r.FilesFound),
					strconv.Itoa(r.FilesMissing),
					strconv.Itoa(r.FilesRedacted),
					r.Duration,
					r.Output,
				})
			}
			return table.Render()
		},
	}
	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 10, "show at most N runs (0 = all)")
	rootCmd.AddCommand(cmd)
}
