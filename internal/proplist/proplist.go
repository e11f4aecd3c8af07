// Package proplist parses proprietary-files lists into sections and
// validates input paths. The format is line-oriented: lines starting with
// '#' are section headers, non-blank lines below a header are entries
// (optionally carrying an inline '#' comment), and an optional first line
// containing "extracted from" records where the list came from.
package proplist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode"
)

// sourceMarker identifies a provenance line when it appears as the very
// first line of a file.
const sourceMarker = "extracted from"

var (
	// ErrNotFound reports a path that does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrNotAFile reports a path that exists but is not a regular file.
	ErrNotAFile = errors.New("not a file")
)

// Section is one named group of entries: a verbatim header line and the
// entry lines below it, in file order. Entry lines keep their inline
// comment suffixes; blank lines are never stored.
type Section struct {
	Header  string
	Content []string
}

// Document is the parsed form of one list file.
type Document struct {
	// SourceLine is the provenance line, or "" if the file has none.
	SourceLine string
	Sections   []Section
}

// Parse splits text into sections. It never fails: lines before the first
// header are discarded, blank lines are dropped, and a header with no
// entries still yields a (content-less) section. Section and line order is
// preserved exactly.
func Parse(text string) Document {
	lines := strings.Split(text, "\n")

	var doc Document
	if len(lines) > 0 && strings.Contains(lines[0], sourceMarker) {
		doc.SourceLine = strings.TrimRightFunc(lines[0], unicode.IsSpace)
		lines = lines[1:]
	}

	var current *Section
	for _, raw := range lines {
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		switch {
		case strings.HasPrefix(line, "#"):
			if current != nil {
				doc.Sections = append(doc.Sections, *current)
			}
			current = &Section{Header: line}
		case current != nil && strings.TrimSpace(line) != "":
			current.Content = append(current.Content, line)
		}
	}
	if current != nil {
		doc.Sections = append(doc.Sections, *current)
	}
	return doc
}

// ParseFile reads path and parses its content.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// ValidateFile checks that path exists and is a regular file. It returns an
// error wrapping ErrNotFound or ErrNotAFile, so callers can distinguish the
// two without string matching.
func ValidateFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	return nil
}
