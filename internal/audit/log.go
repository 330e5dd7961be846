package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redactyl/extractor/internal/types"
)

// RunRecord summarizes one extraction run. File contents are never stored.
type RunRecord struct {
	Timestamp     time.Time     `json:"timestamp"`
	RunID         string        `json:"run_id"`
	Root          string        `json:"root"`
	Output        string        `json:"output"`
	FilesTotal    int           `json:"files_total"`
	FilesFound    int           `json:"files_found"`
	FilesMissing  int           `json:"files_missing"`
	FilesRedacted int           `json:"files_redacted"`
	Duration      string        `json:"duration"`
	Files         []FileSummary `json:"files,omitempty"`
}

type FileSummary struct {
	Path    string `json:"path"`
	Existed bool   `json:"existed"`
	Digest  string `json:"digest,omitempty"`
}

type AuditLog struct {
	logPath string
}

func NewAuditLog(root string) *AuditLog {
	gitDir := filepath.Join(root, ".git")
	logPath := filepath.Join(root, ".extractor_audit.jsonl")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		logPath = filepath.Join(gitDir, "extractor_audit.jsonl")
	}
	return &AuditLog{logPath: logPath}
}

// Path returns the JSONL file the log appends to.
func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns recorded runs, newest first. Malformed lines are skipped.
func (a *AuditLog) LoadHistory() ([]RunRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var record RunRecord
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogRun(record RunRecord) error {
	if record.RunID == "" {
		record.RunID = fmt.Sprintf("run_%d", record.Timestamp.Unix())
	}

	// Owner-only: the record names files that may hold secrets
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

func CreateRunRecord(
	root string,
	output string,
	files []types.FileResult,
	started time.Time,
	duration time.Duration,
) RunRecord {
	rec := RunRecord{
		Timestamp:  started,
		Root:       root,
		Output:     output,
		FilesTotal: len(files),
		Duration:   duration.String(),
		Files:      make([]FileSummary, 0, len(files)),
	}
	for _, f := range files {
		if f.Existed {
			rec.FilesFound++
		} else {
			rec.FilesMissing++
		}
		if f.Redacted {
			rec.FilesRedacted++
		}
		rec.Files = append(rec.Files, FileSummary{Path: f.Spec.Path, Existed: f.Existed, Digest: f.Digest})
	}
	return rec
}
