package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redactyl/extractor/internal/types"
)

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}

func TestResolve(t *testing.T) {
	got := Resolve("/base", types.FileSpec{Path: "src/App.tsx"})
	assert.Equal(t, filepath.Join("/base", "src", "App.tsx"), got)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/base", DefaultOutput), OutputPath(Config{Root: "/base"}))
	assert.Equal(t, filepath.Join("/base", "r.txt"), OutputPath(Config{Root: "/base", Output: "r.txt"}))
	abs := filepath.Join(t.TempDir(), "elsewhere.txt")
	assert.Equal(t, abs, OutputPath(Config{Root: "/base", Output: abs}))
}

func TestDefaultFiles_OrderAndRedaction(t *testing.T) {
	specs := DefaultFiles()
	require.Len(t, specs, 10)
	assert.Equal(t, "package.json", specs[0].Path)
	assert.Equal(t, "src/App.tsx", specs[9].Path)
	for _, s := range specs {
		assert.Equal(t, strings.HasPrefix(s.Path, ".env"), s.Redact, s.Path)
	}
}

func TestRun_ManifestOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"x"}`)

	res, err := Run(Config{Root: dir, Now: fixedClock(time.Now())})
	require.NoError(t, err)

	specs := DefaultFiles()
	require.Len(t, res.Files, len(specs))
	assert.Equal(t, 1, res.Found())
	assert.Equal(t, len(specs)-1, res.Missing())

	b, err := os.ReadFile(filepath.Join(dir, DefaultOutput))
	require.NoError(t, err)
	out := string(b)
	assert.Equal(t, res.Report, out)
	assert.Equal(t, len(specs)-1, strings.Count(out, "FILE NOT FOUND: "))
	assert.Contains(t, out, "\n"+`{"name":"x"}`+"\n")

	// one block per spec, in declaration order
	last := -1
	for _, s := range specs {
		idx := strings.Index(out, "FILE: "+s.Description+"\n")
		require.GreaterOrEqual(t, idx, 0, s.Description)
		assert.Greater(t, idx, last, "block for %s out of order", s.Description)
		assert.Equal(t, 1, strings.Count(out, "FILE: "+s.Description+"\n"))
		last = idx
	}
	assert.Contains(t, out, "FILE NOT FOUND: "+filepath.Join(dir, "src", "App.tsx"))
}

func TestRun_RedactsEnvFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "# api\nAPI_KEY = secret123\nPLAIN\n")
	writeFile(t, dir, "vite.config.ts", "const a = 1\n")

	res, err := Run(Config{Root: dir})
	require.NoError(t, err)
	assert.Contains(t, res.Report, "# api\nAPI_KEY=[REDACTED]\nPLAIN\n")
	assert.NotContains(t, res.Report, "secret123")
	// non-redacted files keep their '=' lines verbatim
	assert.Contains(t, res.Report, "const a = 1\n")

	for _, f := range res.Files {
		switch f.Spec.Path {
		case ".env":
			assert.True(t, f.Redacted)
		case "vite.config.ts":
			assert.False(t, f.Redacted)
		}
	}
}

func TestRun_RedactGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config/app.secret", "TOKEN=abc\n")
	res, err := Run(Config{
		Root:        dir,
		Files:       []types.FileSpec{{Path: "config/app.secret", Description: "secret"}},
		RedactGlobs: []string{"**/*.secret"},
	})
	require.NoError(t, err)
	assert.Contains(t, res.Report, "TOKEN=[REDACTED]")
}

func TestRun_IdempotentExceptTimestamp(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"x"}`)
	writeFile(t, dir, ".env.local", "A=1\n")

	first, err := Run(Config{Root: dir, Now: fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))})
	require.NoError(t, err)
	second, err := Run(Config{Root: dir, Now: fixedClock(time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local))})
	require.NoError(t, err)

	a := strings.Split(first.Report, "\n")
	b := strings.Split(second.Report, "\n")
	require.Equal(t, len(a), len(b))
	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
			assert.True(t, strings.HasPrefix(a[i], "Generated on: "), "unexpected diff on line %d: %q", i, a[i])
		}
	}
	assert.Equal(t, 1, diff)
}

func TestRun_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte{'<', 'p', '>', 0xE9, 0xFF}, 0o644))
	res, err := Run(Config{Root: dir})
	require.NoError(t, err)
	for _, f := range res.Files {
		if f.Spec.Path == "index.html" {
			assert.True(t, f.Existed)
			assert.False(t, f.Failed())
			assert.Equal(t, "<p>éÿ", f.Content)
		}
	}
}

func TestRun_DirectoryEntryIsInlineError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".env"), 0o755))
	res, err := Run(Config{Root: dir})
	require.NoError(t, err)
	env := res.Files[2]
	require.Equal(t, ".env", env.Spec.Path)
	assert.True(t, env.Existed)
	assert.True(t, env.Failed())
	assert.False(t, env.Redacted)
	assert.Contains(t, res.Report, "\n"+env.Content+"\n")
}

func TestRun_WriteFailureIsFatal(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(Config{Root: dir, Output: filepath.Join("no", "such", "dir", "out.txt")})
	require.Error(t, err)
}

func TestRun_CacheFlagsChanges(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"x"}`)
	writeFile(t, dir, "index.html", "<html></html>")

	first, err := Run(Config{Root: dir, Cache: true})
	require.NoError(t, err)
	require.Empty(t, first.Warnings)
	for _, f := range first.Files {
		if f.Existed {
			assert.True(t, f.Changed, "first run marks %s changed", f.Spec.Path)
		}
	}

	writeFile(t, dir, "index.html", "<html><body/></html>")
	second, err := Run(Config{Root: dir, Cache: true})
	require.NoError(t, err)
	for _, f := range second.Files {
		switch f.Spec.Path {
		case "package.json":
			assert.False(t, f.Changed)
		case "index.html":
			assert.True(t, f.Changed)
		}
	}
	_, err = os.Stat(filepath.Join(dir, ".extractor_cache.json"))
	assert.NoError(t, err)
}

func TestExtract_DoesNotSaveCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{}")
	Extract(Config{Root: dir, Cache: true})
	_, err := os.Stat(filepath.Join(dir, ".extractor_cache.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_FailedWriteKeepsCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html></html>")

	_, err := Run(Config{Root: dir, Cache: true})
	require.NoError(t, err)

	writeFile(t, dir, "index.html", "<html><body/></html>")
	_, err = Run(Config{Root: dir, Cache: true, Output: filepath.Join("missing", "dir", "out.txt")})
	require.Error(t, err)

	res, err := Run(Config{Root: dir, Cache: true})
	require.NoError(t, err)
	for _, f := range res.Files {
		if f.Spec.Path == "index.html" {
			assert.True(t, f.Changed, "change not yet reported must stay pending")
		}
	}
}

func TestExtract_CorruptCacheWarns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{}")
	writeFile(t, dir, ".extractor_cache.json", "{not json")

	res := Extract(Config{Root: dir, Cache: true})
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Error(), "load cache")
	assert.True(t, res.Files[0].Changed)
}

func TestExtract_MissingCacheIsSilent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{}")
	res := Extract(Config{Root: dir, Cache: true})
	assert.Empty(t, res.Warnings)
}

func TestExtract_EmptyEnvNotRedacted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "")
	writeFile(t, dir, ".env.local", "A=1\n")

	res := Extract(Config{Root: dir})
	for _, f := range res.Files {
		switch f.Spec.Path {
		case ".env":
			assert.True(t, f.Existed)
			assert.False(t, f.Redacted)
		case ".env.local":
			assert.True(t, f.Redacted)
		}
	}
}

func TestExtract_NoCacheWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", "{}")
	Extract(Config{Root: dir})
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
