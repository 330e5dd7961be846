package extractor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/redactyl/extractor/internal/config"
	"github.com/redactyl/extractor/internal/types"
)

// loadConfigs returns the global and local config files for root. Missing
// files are fine; files that exist but fail to load are reported on stderr
// and ignored.
func loadConfigs(root string, stderr io.Writer) (global, local config.FileConfig) {
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	} else if !errors.Is(err, config.ErrNoConfig) {
		_, _ = fmt.Fprintln(stderr, "warning: global config ignored:", err)
	}
	if c, err := config.LoadLocal(root); err == nil {
		local = c
	} else if !errors.Is(err, config.ErrNoConfig) {
		_, _ = fmt.Fprintln(stderr, "warning: local config ignored:", err)
	}
	return global, local
}

func basePath() (string, error) {
	abs, err := filepath.Abs(flagPath)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", flagPath, err)
	}
	return abs, nil
}

// useColor reports whether w is an interactive terminal and color was not disabled.
func useColor(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickFiles returns the first non-empty file list; nil selects the built-in list.
func pickFiles(local, global config.FileConfig) []types.FileSpec {
	if specs := local.FileSpecs(); specs != nil {
		return specs
	}
	return global.FileSpecs()
}

func pickStrings(local, global []string) []string {
	if len(local) > 0 {
		return local
	}
	return global
}
