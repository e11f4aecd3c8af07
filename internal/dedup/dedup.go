// Package dedup removes device list entries that already appear in a
// common list. Comparison uses the entry key: the text before the first
// inline '#' comment, with surrounding whitespace trimmed.
package dedup

import (
	"strings"

	"github.com/kartik-commits/update-vendor-blobs/internal/proplist"
)

// Logger is the narrow logging capability injected into the deduplicator.
// Verbosef messages are only shown when the caller enabled verbose output.
type Logger interface {
	Infof(format string, args ...any)
	Verbosef(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)    {}
func (nopLogger) Verbosef(string, ...any) {}

// Result holds the rewritten device list and what was removed from it.
type Result struct {
	// Output is the filtered list text, ending in exactly one newline.
	Output string
	// Removed is the number of dropped entry lines.
	Removed int
	// RemovedLines are the dropped lines, verbatim, in file order.
	RemovedLines []string
}

// Deduplicator filters a device document against the entries of a common
// document. Load the common file first, then filter.
type Deduplicator struct {
	entries    map[string]struct{}
	sourceLine string
	log        Logger
}

// New returns a Deduplicator logging through log. A nil log discards all
// messages.
func New(log Logger) *Deduplicator {
	if log == nil {
		log = nopLogger{}
	}
	return &Deduplicator{
		entries: make(map[string]struct{}),
		log:     log,
	}
}

// EntryKey normalizes a content line for comparison: everything before the
// first '#' (the whole line if there is none), trimmed. A comment-only line
// normalizes to "".
func EntryKey(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// LoadCommon adds every entry of doc to the common set and returns the set
// size. Comment-only lines normalize to the empty key and are skipped, so
// they can never match anything during filtering.
func (d *Deduplicator) LoadCommon(doc proplist.Document) int {
	if doc.SourceLine != "" {
		d.sourceLine = doc.SourceLine
	}
	for _, sec := range doc.Sections {
		for _, line := range sec.Content {
			if key := EntryKey(line); key != "" {
				d.entries[key] = struct{}{}
			}
		}
	}
	d.log.Verbosef("Loaded %d entries from common file", len(d.entries))
	return len(d.entries)
}

// Filter rewrites doc without the lines whose entry key is in the common
// set. A section that loses all of its content disappears entirely, header
// included. Surviving sections keep their original line order and are
// separated by single blank lines; the provenance line (the device file's
// wins over the common file's) leads the output followed by one blank line.
func (d *Deduplicator) Filter(doc proplist.Document) Result {
	if doc.SourceLine != "" {
		d.sourceLine = doc.SourceLine
	}

	var res Result
	var out []string
	if d.sourceLine != "" {
		out = append(out, d.sourceLine, "")
	}

	for _, sec := range doc.Sections {
		if len(sec.Content) == 0 {
			continue
		}
		var kept []string
		for _, line := range sec.Content {
			if _, dup := d.entries[EntryKey(line)]; dup {
				res.Removed++
				res.RemovedLines = append(res.RemovedLines, line)
				d.log.Verbosef("Removing duplicate: %s", line)
				continue
			}
			kept = append(kept, line)
		}
		if len(kept) > 0 {
			out = append(out, sec.Header)
			out = append(out, kept...)
			out = append(out, "")
		}
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	d.log.Infof("Found %d duplicates to remove", res.Removed)
	res.Output = strings.Join(out, "\n") + "\n"
	return res
}
