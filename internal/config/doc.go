// Package config loads extractor configuration from local and global YAML
// files. It is internal; CLI code layers flags over the files and maps the
// result into engine configuration.
package config
