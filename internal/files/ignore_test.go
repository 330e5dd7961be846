package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAppendIgnore_CreatesAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	added, err := AppendIgnore(dir, "extracted_files_content.txt")
	if err != nil || !added {
		t.Fatalf("first append: added=%v err=%v", added, err)
	}
	added, err = AppendIgnore(dir, "extracted_files_content.txt")
	if err != nil || added {
		t.Fatalf("second append should be a no-op: added=%v err=%v", added, err)
	}
	b, _ := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if string(b) != "extracted_files_content.txt\n" {
		t.Fatalf("unexpected .gitignore: %q", string(b))
	}
}

func TestAppendIgnore_AddsMissingNewline(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(p, []byte("node_modules"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := AppendIgnore(dir, "report.txt"); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(p)
	if string(b) != "node_modules\nreport.txt\n" {
		t.Fatalf("unexpected .gitignore: %q", string(b))
	}
}

func TestAppendIgnore_RootAnchoredCountsAsPresent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("/report.txt\n"), 0644); err != nil {
		t.Fatal(err)
	}
	added, err := AppendIgnore(dir, "report.txt")
	if err != nil || added {
		t.Fatalf("expected no-op, added=%v err=%v", added, err)
	}
}
