package core

import (
	"github.com/redactyl/extractor/internal/engine"
	"github.com/redactyl/extractor/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Result = engine.Result
type FileSpec = types.FileSpec
type FileResult = types.FileResult

// Extract reads the configured files without writing a report.
func Extract(cfg Config) Result {
	return engine.Extract(cfg)
}

// Run extracts and writes the report; the error is the report write failure.
func Run(cfg Config) (Result, error) {
	return engine.Run(cfg)
}

// DefaultFiles returns the built-in file list in report order.
func DefaultFiles() []FileSpec { return engine.DefaultFiles() }
