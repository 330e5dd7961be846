package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// DB remembers the content digest each report input had on the previous run.
type DB struct {
	// Path relative to the base directory -> xxhash64 hex of the reported content
	Entries map[string]string `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits
	// Fall back to the base directory if .git does not exist
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "extractor_cache.json")
	}
	return filepath.Join(root, ".extractor_cache.json")
}

// Load reads the cache for root. The returned DB always has a usable map.
func Load(root string) (DB, error) {
	var db DB
	p := defaultPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0644)
}

// Changed reports whether digest differs from the remembered value for rel.
// Paths never seen before count as changed.
func (db DB) Changed(rel, digest string) bool {
	prev, ok := db.Entries[rel]
	return !ok || prev != digest
}
