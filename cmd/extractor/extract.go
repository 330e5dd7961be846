package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/redactyl/extractor/internal/audit"
	"github.com/redactyl/extractor/internal/config"
	"github.com/redactyl/extractor/internal/engine"
	"github.com/redactyl/extractor/internal/files"
	"github.com/redactyl/extractor/internal/report"
	"github.com/redactyl/extractor/pkg/core"
)

var (
	flagOutput    string
	flagProject   string
	flagTable     bool
	flagJSON      bool
	flagCache     bool
	flagAudit     bool
	flagGitignore bool
	flagGit       bool
	flagCopy      bool
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&flagOutput, "output", "o", "", "report path, relative to --path (default "+engine.DefaultOutput+")")
	f.StringVar(&flagProject, "project", "", "project label shown in the report banner")
	f.BoolVar(&flagTable, "table", false, "print the file checklist as a table")
	f.BoolVar(&flagJSON, "json", false, "print the run inventory as JSON instead of the checklist")
	f.BoolVar(&flagCache, "cache", false, "remember content digests and mark files changed since the last run")
	f.BoolVar(&flagAudit, "audit", false, "append a run record to the audit log")
	f.BoolVar(&flagGitignore, "gitignore", false, "add the report file to .gitignore")
	f.BoolVar(&flagGit, "git", false, "include repository, commit and branch in the report banner")
	f.BoolVar(&flagCopy, "copy", false, "copy the report to the clipboard")
	rootCmd.MarkFlagsMutuallyExclusive("json", "table")
}

func runExtract(cmd *cobra.Command, _ []string) error {
	abs, err := basePath()
	if err != nil {
		return err
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// Load configs: CLI > local > global
	gcfg, lcfg := loadConfigs(abs, stderr)
	cfg := buildConfig(abs, lcfg, gcfg)

	started := time.Now()
	res, err := engine.Run(cfg)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		_, _ = fmt.Fprintln(stderr, "warning:", w)
	}

	if flagGitignore {
		addToGitignore(abs, res.OutputPath, stderr)
	}
	if pickBool(flagAudit, lcfg.Audit, gcfg.Audit) {
		rec := audit.CreateRunRecord(abs, res.OutputPath, res.Files, started, res.Duration)
		if err := audit.NewAuditLog(abs).LogRun(rec); err != nil {
			_, _ = fmt.Fprintln(stderr, "warning: audit:", err)
		}
	}
	if flagCopy {
		if err := copyToClipboard(res.Report); err != nil {
			_, _ = fmt.Fprintln(stderr, "warning: clipboard:", err)
		} else {
			_, _ = fmt.Fprintln(stderr, "report copied to clipboard")
		}
	}

	opts := report.PrintOptions{
		NoColor:     !useColor(stdout, pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)),
		ShowChanges: cfg.Cache,
	}
	switch {
	case flagJSON:
		return core.MarshalResults(stdout, res)
	case flagTable:
		report.PrintTable(stdout, res.OutputPath, res.Files, opts)
	default:
		report.PrintText(stdout, res.OutputPath, res.Files, opts)
	}
	return nil
}

func buildConfig(abs string, lcfg, gcfg config.FileConfig) engine.Config {
	return engine.Config{
		Root:        abs,
		Files:       pickFiles(lcfg, gcfg),
		Output:      pickString(flagOutput, lcfg.Output, gcfg.Output),
		Title:       pickString("", lcfg.Title, gcfg.Title),
		Project:     pickString(flagProject, lcfg.Project, gcfg.Project),
		RedactGlobs: pickStrings(lcfg.RedactGlobs, gcfg.RedactGlobs),
		Cache:       pickBool(flagCache, lcfg.Cache, gcfg.Cache),
		GitMeta:     pickBool(flagGit, lcfg.GitMeta, gcfg.GitMeta),
	}
}

// addToGitignore ignores the report when it lives inside the base directory.
func addToGitignore(root, output string, stderr io.Writer) {
	rel, err := filepath.Rel(root, output)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		_, _ = fmt.Fprintln(stderr, "warning: report is outside", root, "- not adding to .gitignore")
		return
	}
	added, err := files.AppendIgnore(root, filepath.ToSlash(rel))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "warning: .gitignore:", err)
		return
	}
	if added {
		_, _ = fmt.Fprintf(stderr, "added %s to .gitignore\n", filepath.ToSlash(rel))
	}
}
