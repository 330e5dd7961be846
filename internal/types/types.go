package types

import "strings"

// FileSpec names one file to extract, relative to the base directory,
// with the description shown in the report and whether its values are redacted.
type FileSpec struct {
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description" yaml:"description"`
	Redact      bool   `json:"redact" yaml:"redact"`
}

// FileResult is the outcome of extracting a single FileSpec.
type FileResult struct {
	Spec     FileSpec `json:"spec"`
	AbsPath  string   `json:"abs_path"`
	Content  string   `json:"-"`
	Existed  bool     `json:"existed"`
	Redacted bool     `json:"redacted"`
	Size     int      `json:"size"`
	Digest   string   `json:"digest,omitempty"`  // xxhash64 of the reported content
	Changed  bool     `json:"changed,omitempty"` // only meaningful with change tracking
}

// Failed reports whether the content is an inline read error placeholder.
func (r FileResult) Failed() bool {
	return strings.HasPrefix(r.Content, ErrorPrefix)
}

// ErrorPrefix marks content that describes a read failure instead of file text.
const ErrorPrefix = "ERROR:"
