// Package core provides a small, stable facade over the extractor's internal
// engine for external integrations. It re-exports a narrow API surface so
// other tools can depend on a stable import path without reaching into
// internal packages.
//
// Example:
//
//	res, err := core.Run(core.Config{Root: "."})
//	if err != nil { /* the report could not be written */ }
//	_ = core.MarshalResults(os.Stdout, res)
package core
