// Package engine contains the extraction logic: it resolves the configured
// file list against a base directory, reads each file as text, applies
// env-style redaction where configured, and renders the report. This package
// is internal; external consumers should use the stable facade in pkg/core.
package engine
