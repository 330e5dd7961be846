package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redactyl/extractor/internal/types"
)

const (
	DefaultTitle   = "TACHIDESK WEBUI PROJECT FILE CONTENTS EXTRACTION"
	DefaultProject = "Tachidesk WebUI"

	timestampLayout = "2006-01-02 15:04:05"
)

var (
	bannerRule = strings.Repeat("=", 80)
	blockRule  = strings.Repeat("-", 60)
)

// Banner is the header written once at the top of a report.
type Banner struct {
	Title       string
	Project     string
	GeneratedAt time.Time

	// Optional repository metadata; empty values are omitted.
	Repo   string
	Commit string
	Branch string
}

// Build renders the report text: the banner followed by one block per file,
// in the order given. Lines are joined with "\n" and the text does not end
// with an extra newline beyond the block trailer.
func Build(b Banner, files []types.FileResult) string {
	title, project := b.Title, b.Project
	if title == "" {
		title = DefaultTitle
	}
	if project == "" {
		project = DefaultProject
	}

	lines := []string{
		bannerRule,
		title,
		bannerRule,
		"Generated on: " + b.GeneratedAt.Format(timestampLayout),
		"Project: " + project,
	}
	if b.Repo != "" {
		lines = append(lines, "Repository: "+b.Repo)
	}
	if b.Commit != "" {
		lines = append(lines, "Commit: "+b.Commit)
	}
	if b.Branch != "" {
		lines = append(lines, "Branch: "+b.Branch)
	}
	lines = append(lines, bannerRule, "")

	for _, f := range files {
		lines = append(lines,
			blockRule,
			"FILE: "+f.Spec.Description,
			"PATH: "+f.AbsPath,
			blockRule,
			"",
		)
		if f.Existed {
			lines = append(lines, f.Content)
		} else {
			lines = append(lines, "FILE NOT FOUND: "+f.AbsPath)
		}
		lines = append(lines, "", "")
	}
	return strings.Join(lines, "\n")
}

// Write stores the report at path, replacing any previous report.
func Write(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
