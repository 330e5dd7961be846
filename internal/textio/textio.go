// Package textio reads report input files as text. Decoding never fails:
// invalid UTF-8 falls back to ISO-8859-1, and read failures come back as
// inline "ERROR:" content rather than Go errors.
package textio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/redactyl/extractor/internal/types"
)

// ReadText returns the textual content of path. A missing file yields
// "ERROR: File not found - <path>" and any other failure "ERROR: <err>".
func ReadText(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Sprintf("%s File not found - %s", types.ErrorPrefix, path)
		}
		return fmt.Sprintf("%s %v", types.ErrorPrefix, err)
	}
	s, err := Decode(b)
	if err != nil {
		return fmt.Sprintf("%s Could not read file - %v", types.ErrorPrefix, err)
	}
	return NormalizeNewlines(s)
}

// Decode interprets b as UTF-8 when valid and as Latin-1 otherwise.
func Decode(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
