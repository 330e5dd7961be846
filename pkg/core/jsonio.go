package core

import (
	"encoding/json"
	"io"
	"time"
)

// Inventory is the machine-readable summary of a run. It never carries file
// contents, only what was extracted and where.
type Inventory struct {
	GeneratedAt string       `json:"generated_at"` // RFC3339
	Root        string       `json:"root"`
	Output      string       `json:"output"`
	FilesTotal  int          `json:"files_total"`
	FilesFound  int          `json:"files_found"`
	Files       []FileResult `json:"files"`
}

// NewInventory summarizes res.
func NewInventory(res Result) Inventory {
	files := res.Files
	if files == nil {
		files = []FileResult{}
	} // no `null` in JSON
	return Inventory{
		GeneratedAt: res.GeneratedAt.Format(time.RFC3339),
		Root:        res.Root,
		Output:      res.OutputPath,
		FilesTotal:  len(res.Files),
		FilesFound:  res.Found(),
		Files:       files,
	}
}

// MarshalResults pretty-prints the run inventory as JSON for pipelines.
func MarshalResults(w io.Writer, res Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewInventory(res))
}

// UnmarshalInventory decodes inventory JSON, useful for ingestion tests.
func UnmarshalInventory(r io.Reader) (Inventory, error) {
	var inv Inventory
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return inv, err
	}
	return inv, nil
}
