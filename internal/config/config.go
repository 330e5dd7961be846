package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/redactyl/extractor/internal/types"
)

// FileConfig is the on-disk YAML configuration shape for the extractor.
// Unset fields are nil so that callers can layer CLI > local > global.
type FileConfig struct {
	Output      *string          `yaml:"output,omitempty"`
	Title       *string          `yaml:"title,omitempty"`
	Project     *string          `yaml:"project,omitempty"`
	Files       []types.FileSpec `yaml:"files,omitempty"`
	RedactGlobs []string         `yaml:"redact_globs,omitempty"`
	NoColor     *bool            `yaml:"no_color,omitempty"`
	Cache       *bool            `yaml:"cache,omitempty"`
	Audit       *bool            `yaml:"audit,omitempty"`
	GitMeta     *bool            `yaml:"git,omitempty"`
}

// ErrNoConfig is returned (wrapped) when no config file exists at the searched location.
var ErrNoConfig = errors.New("no config")

// LocalNames lists the repo-local config file names in search order.
var LocalNames = []string{".extractor.yml", ".extractor.yaml", "extractor.yml", "extractor.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given base directory.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, fmt.Errorf("local: %w", ErrNoConfig)
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, fmt.Errorf("no config dir: %w", ErrNoConfig)
	}
	p := filepath.Join(base, "extractor", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, fmt.Errorf("global: %w", ErrNoConfig)
}

// Validate rejects file lists the extractor cannot resolve under the base directory.
func (fc FileConfig) Validate() error {
	for i, f := range fc.Files {
		p := strings.TrimSpace(f.Path)
		if p == "" {
			return fmt.Errorf("files[%d]: empty path", i)
		}
		if filepath.IsAbs(p) {
			return fmt.Errorf("files[%d]: path %q must be relative", i, p)
		}
	}
	return nil
}

// FileSpecs returns the configured file list with descriptions defaulted to
// the path, or nil when the config does not override the list.
func (fc FileConfig) FileSpecs() []types.FileSpec {
	if len(fc.Files) == 0 {
		return nil
	}
	out := make([]types.FileSpec, len(fc.Files))
	for i, f := range fc.Files {
		f.Path = strings.TrimSpace(f.Path)
		if f.Description == "" {
			f.Description = f.Path
		}
		out[i] = f
	}
	return out
}

// Marshal renders cfg as YAML, used by `config init`.
func Marshal(cfg FileConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
