package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/redactyl/extractor/internal/types"
)

const (
	markFound   = "✓"
	markMissing = "✗"
)

var (
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	changedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

type PrintOptions struct {
	NoColor bool
	// ShowChanges annotates files whose content differs from the previous run.
	ShowChanges bool
}

// PrintText writes the completion summary followed by one checklist line per
// file, in report order.
func PrintText(w io.Writer, outputPath string, files []types.FileResult, opts PrintOptions) {
	printHeader(w, outputPath, files)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Files processed:")
	for _, f := range files {
		line := fmt.Sprintf("  %s %s", mark(f.Existed, opts.NoColor), f.Spec.Description)
		if opts.ShowChanges && f.Existed && f.Changed {
			line += " " + paint(changedStyle, "(changed)", opts.NoColor)
		}
		fmt.Fprintln(w, line)
	}
}

// PrintTable is PrintText with the checklist rendered as a bordered table.
func PrintTable(w io.Writer, outputPath string, files []types.FileResult, opts PrintOptions) {
	printHeader(w, outputPath, files)
	fmt.Fprintln(w)

	header := []string{"STATUS", "FILE", "PATH", "BYTES"}
	if opts.ShowChanges {
		header = append(header, "CHANGED")
	}
	table := tablewriter.NewWriter(w)
	table.Header(header)
	for _, f := range files {
		size := "-"
		if f.Existed {
			size = strconv.Itoa(f.Size)
		}
		row := []string{mark(f.Existed, true), f.Spec.Description, f.AbsPath, size}
		if opts.ShowChanges {
			row = append(row, yesNo(f.Existed && f.Changed))
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

func printHeader(w io.Writer, outputPath string, files []types.FileResult) {
	fmt.Fprintf(w, "File contents extracted to: %s\n", outputPath)
	fmt.Fprintf(w, "Total files processed: %d\n", len(files))
}

func mark(existed, noColor bool) string {
	if existed {
		return paint(foundStyle, markFound, noColor)
	}
	return paint(missingStyle, markMissing, noColor)
}

func paint(s lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return s.Render(text)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
