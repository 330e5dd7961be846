// Package extractor provides the command-line interface for the extractor
// tool. Running the root command with no arguments writes the report for the
// current directory; subcommands list the file set, scaffold a config file and
// show the run history.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/extractor/cmd/extractor"
//	func main() { extractor.Execute() }
package extractor
