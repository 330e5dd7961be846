// Package redact masks values in KEY=VALUE style environment files and
// decides which report inputs are subject to that masking.
package redact

import (
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/redactyl/extractor/internal/types"
)

const Placeholder = "[REDACTED]"

// EnvValues replaces the value of every KEY=VALUE line with Placeholder.
// Comment lines (leading '#') and lines without '=' pass through unchanged.
// Quoting, continuations and multi-line values are not interpreted.
func EnvValues(content string) string {
	if content == "" || strings.HasPrefix(content, types.ErrorPrefix) {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.Contains(line, "=") || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		lines[i] = strings.TrimSpace(parts[0]) + "=" + Placeholder
	}
	return strings.Join(lines, "\n")
}

// ShouldRedactPath reports whether rel matches any of the doublestar globs.
// Invalid patterns never match.
func ShouldRedactPath(rel string, globs []string) bool {
	p := filepath.ToSlash(rel)
	for _, g := range globs {
		if ok, err := doublestar.Match(g, p); err == nil && ok {
			return true
		}
	}
	return false
}

// Wanted combines the per-file flag with the glob policy.
func Wanted(spec types.FileSpec, globs []string) bool {
	return spec.Redact || ShouldRedactPath(spec.Path, globs)
}
