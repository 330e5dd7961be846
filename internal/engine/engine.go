package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/redactyl/extractor/internal/cache"
	"github.com/redactyl/extractor/internal/git"
	"github.com/redactyl/extractor/internal/redact"
	"github.com/redactyl/extractor/internal/report"
	"github.com/redactyl/extractor/internal/textio"
	"github.com/redactyl/extractor/internal/types"
)

// DefaultOutput is the report file name written under the base directory.
const DefaultOutput = "extracted_files_content.txt"

// Config controls one extraction run.
type Config struct {
	Root string
	// Files is the ordered list to extract; nil means DefaultFiles().
	Files []types.FileSpec
	// Output is the report path, relative to Root unless absolute.
	Output  string
	Title   string
	Project string
	// RedactGlobs enables redaction for any file whose relative path matches.
	RedactGlobs []string
	// Cache tracks content digests between runs to flag changed files.
	Cache bool
	// GitMeta adds repository, commit and branch lines to the banner.
	GitMeta bool
	// Now is the clock used for the banner timestamp; defaults to time.Now.
	Now func() time.Time
}

// Result describes an extraction run. Files keeps the configured order.
type Result struct {
	Root        string
	OutputPath  string
	GeneratedAt time.Time
	Duration    time.Duration
	Banner      report.Banner
	Files       []types.FileResult
	// Report is the rendered text; set by Run.
	Report string
	// Warnings collects non-fatal problems such as cache persistence errors.
	Warnings []error

	// nextCache holds the digests to remember once the report is written.
	nextCache *cache.DB
}

// Found returns the number of files that existed.
func (r Result) Found() int {
	n := 0
	for _, f := range r.Files {
		if f.Existed {
			n++
		}
	}
	return n
}

// Missing returns the number of files that did not exist.
func (r Result) Missing() int { return len(r.Files) - r.Found() }

// DefaultFiles returns the built-in file list in report order.
func DefaultFiles() []types.FileSpec {
	return []types.FileSpec{
		{Path: "package.json", Description: "package.json (current, after any edits)"},
		{Path: "vite.config.ts", Description: "vite.config.ts (current)"},
		{Path: ".env", Description: ".env (values redacted)", Redact: true},
		{Path: ".env.local", Description: ".env.local (values redacted)", Redact: true},
		{Path: ".env.development", Description: ".env.development (values redacted)", Redact: true},
		{Path: "tsconfig.json", Description: "tsconfig.json"},
		{Path: "tsconfig.node.json", Description: "tsconfig.node.json (if present)"},
		{Path: "index.html", Description: "index.html"},
		{Path: "src/index.tsx", Description: "src/index.tsx (main entry point)"},
		{Path: "src/App.tsx", Description: "src/App.tsx"},
	}
}

// Resolve joins a spec's slash-separated relative path onto root. No I/O.
func Resolve(root string, spec types.FileSpec) string {
	return filepath.Join(root, filepath.FromSlash(spec.Path))
}

// OutputPath returns where the report for cfg is written.
func OutputPath(cfg Config) string {
	out := cfg.Output
	if out == "" {
		out = DefaultOutput
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(cfg.Root, out)
}

// Extract reads every configured file in order. It never fails: missing and
// unreadable files are recorded inline in the per-file results. Extract
// writes nothing; Run persists the digest cache after the report is written.
func Extract(cfg Config) Result {
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	specs := cfg.Files
	if specs == nil {
		specs = DefaultFiles()
	}

	begin := time.Now()
	started := now()
	res := Result{
		Root:        cfg.Root,
		OutputPath:  OutputPath(cfg),
		GeneratedAt: started,
		Banner: report.Banner{
			Title:       cfg.Title,
			Project:     cfg.Project,
			GeneratedAt: started,
		},
		Files: make([]types.FileResult, 0, len(specs)),
	}
	if cfg.GitMeta {
		res.Banner.Repo, res.Banner.Commit, res.Banner.Branch = git.RepoMetadata(cfg.Root)
	}

	var db cache.DB
	if cfg.Cache {
		var err error
		// A missing cache on first run is expected
		if db, err = cache.Load(cfg.Root); err != nil && !errors.Is(err, fs.ErrNotExist) {
			res.Warnings = append(res.Warnings, fmt.Errorf("load cache: %w", err))
		}
	}

	for _, spec := range specs {
		fr := extractOne(cfg, spec)
		if cfg.Cache && fr.Existed {
			fr.Changed = db.Changed(spec.Path, fr.Digest)
		}
		res.Files = append(res.Files, fr)
	}

	if cfg.Cache {
		next := cache.DB{Entries: map[string]string{}}
		for _, f := range res.Files {
			if f.Existed {
				next.Entries[f.Spec.Path] = f.Digest
			}
		}
		res.nextCache = &next
	}
	res.Duration = time.Since(begin)
	return res
}

func extractOne(cfg Config, spec types.FileSpec) types.FileResult {
	fr := types.FileResult{Spec: spec, AbsPath: Resolve(cfg.Root, spec)}
	if _, err := os.Stat(fr.AbsPath); err != nil {
		return fr
	}
	fr.Existed = true
	fr.Content = textio.ReadText(fr.AbsPath)
	if redact.Wanted(spec, cfg.RedactGlobs) && !fr.Failed() {
		fr.Content = redact.EnvValues(fr.Content)
		fr.Redacted = fr.Content != ""
	}
	fr.Size = len(fr.Content)
	fr.Digest = fmt.Sprintf("%016x", xxhash.Sum64String(fr.Content))
	return fr
}

// Run extracts, renders and writes the report. The only error it returns is
// a failure to write the report file; the digest cache only advances when
// the report was written.
func Run(cfg Config) (Result, error) {
	res := Extract(cfg)
	res.Report = report.Build(res.Banner, res.Files)
	if err := report.Write(res.OutputPath, res.Report); err != nil {
		return res, err
	}
	if res.nextCache != nil {
		if err := cache.Save(cfg.Root, *res.nextCache); err != nil {
			res.Warnings = append(res.Warnings, fmt.Errorf("save cache: %w", err))
		}
	}
	return res, nil
}
