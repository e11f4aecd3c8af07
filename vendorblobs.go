// Package vendorblobs provides a public API for deduplicating device
// proprietary-files lists against a shared common list.
//
// This is the library entry point. For the CLI tool, see cmd/update-vendor-blobs/.
package vendorblobs

import (
	"github.com/kartik-commits/update-vendor-blobs/internal/dedup"
	"github.com/kartik-commits/update-vendor-blobs/internal/proplist"
)

// Re-export core types from the internal packages so consumers don't need
// to import internal paths.
type (
	Section  = proplist.Section
	Document = proplist.Document
	Logger   = dedup.Logger
	Result   = dedup.Result
)

var (
	// ErrNotFound reports an input path that does not exist.
	ErrNotFound = proplist.ErrNotFound
	// ErrNotAFile reports an input path that is not a regular file.
	ErrNotAFile = proplist.ErrNotAFile
)

// Parse parses list text into its provenance line and sections.
func Parse(text string) Document {
	return proplist.Parse(text)
}

// EntryKey returns the comparison key for a content line: the text before
// the first inline '#' comment, trimmed.
func EntryKey(line string) string {
	return dedup.EntryKey(line)
}

// Dedupe filters deviceText against the entries of commonText and returns
// the rewritten list. It is a pure in-memory transformation; writing the
// result anywhere is the caller's business.
func Dedupe(commonText, deviceText string, opts ...Option) *Result {
	cfg := applyOpts(opts)
	d := dedup.New(cfg.logger)
	d.LoadCommon(proplist.Parse(commonText))
	res := d.Filter(proplist.Parse(deviceText))
	return &res
}

// DedupeFiles validates and reads both list files, then filters the device
// list against the common one. It never writes: the device file on disk is
// left untouched.
func DedupeFiles(commonPath, devicePath string, opts ...Option) (*Result, error) {
	for _, path := range []string{commonPath, devicePath} {
		if err := proplist.ValidateFile(path); err != nil {
			return nil, err
		}
	}

	cfg := applyOpts(opts)
	common, err := proplist.ParseFile(commonPath)
	if err != nil {
		return nil, err
	}
	device, err := proplist.ParseFile(devicePath)
	if err != nil {
		return nil, err
	}

	d := dedup.New(cfg.logger)
	d.LoadCommon(common)
	res := d.Filter(device)
	return &res, nil
}
