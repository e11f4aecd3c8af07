package dedup_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kartik-commits/update-vendor-blobs/internal/dedup"
	"github.com/kartik-commits/update-vendor-blobs/internal/proplist"
)

// recordingLogger captures log lines for assertions.
type recordingLogger struct {
	info    []string
	verbose []string
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Verbosef(format string, args ...any) {
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func TestEntryKey(t *testing.T) {
	require.Equal(t, "vendor/lib/libfoo.so", dedup.EntryKey("vendor/lib/libfoo.so"))
	require.Equal(t, "vendor/lib/libfoo.so", dedup.EntryKey("vendor/lib/libfoo.so  # needed for camera"))
	require.Equal(t, "vendor/lib/libfoo.so", dedup.EntryKey("  vendor/lib/libfoo.so  "))
	require.Equal(t, "", dedup.EntryKey("# just a comment"))
	require.Equal(t, "", dedup.EntryKey("   "))
}

func TestLoadCommon(t *testing.T) {
	d := dedup.New(nil)
	n := d.LoadCommon(proplist.Parse("# Audio\nlib/foo.so\nlib/foo.so  # repeated with comment\nlib/bar.so\n"))
	require.Equal(t, 2, n)
}

func TestFilterKeepsNonDuplicates(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("#comment\nlib/foo.so\nlib/bar.so\n"))

	res := d.Filter(proplist.Parse("#comment\nlib/foo.so\nlib/baz.so\n"))
	require.Equal(t, "#comment\nlib/baz.so\n", res.Output)
	require.Equal(t, 1, res.Removed)
	require.Equal(t, []string{"lib/foo.so"}, res.RemovedLines)
}

func TestFilterElidesFullyDuplicatedSection(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("#comment\nlib/foo.so\n"))

	res := d.Filter(proplist.Parse("#comment\nlib/foo.so\n"))
	require.Equal(t, "\n", res.Output)
	require.Equal(t, 1, res.Removed)
}

func TestFilterStripsInlineCommentForComparison(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("# Camera\nlib/foo.so\n"))

	res := d.Filter(proplist.Parse("# Camera\nlib/foo.so  # needed for camera\nlib/bar.so\n"))
	require.Equal(t, 1, res.Removed)
	require.Equal(t, []string{"lib/foo.so  # needed for camera"}, res.RemovedLines)
	require.Equal(t, "# Camera\nlib/bar.so\n", res.Output)
}

func TestFilterPreservesOrder(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("# Common\nlib/b.so\n"))

	res := d.Filter(proplist.Parse("# One\nlib/a.so\nlib/b.so\nlib/c.so\n\n# Two\nlib/d.so\n"))
	require.Equal(t, "# One\nlib/a.so\nlib/c.so\n\n# Two\nlib/d.so\n", res.Output)
}

func TestFilterSkipsEmptySections(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("# Common\nlib/x.so\n"))

	// "# Empty" has no content so it contributes nothing to output.
	res := d.Filter(proplist.Parse("# Empty\n# Audio\nlib/a.so\n"))
	require.Equal(t, "# Audio\nlib/a.so\n", res.Output)
	require.Zero(t, res.Removed)
}

func TestFilterSourceLineRoundTrip(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("# Common\nlib/x.so\n"))

	res := d.Filter(proplist.Parse("# extracted from crosshatch\n# Audio\nlib/a.so\n"))
	require.Equal(t, "# extracted from crosshatch\n\n# Audio\nlib/a.so\n", res.Output)
}

func TestFilterSourceLineSurvivesFullElision(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("# Common\nlib/a.so\n"))

	res := d.Filter(proplist.Parse("# extracted from crosshatch\n# Audio\nlib/a.so\n"))
	require.Equal(t, "# extracted from crosshatch\n", res.Output)
	require.Equal(t, 1, res.Removed)
}

func TestFilterDeviceSourceLineWins(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("# extracted from common tree\n# Common\nlib/x.so\n"))

	res := d.Filter(proplist.Parse("# extracted from crosshatch\n# Audio\nlib/a.so\n"))
	require.Equal(t, "# extracted from crosshatch\n\n# Audio\nlib/a.so\n", res.Output)
}

func TestFilterCommonSourceLineUsedWhenDeviceHasNone(t *testing.T) {
	d := dedup.New(nil)
	d.LoadCommon(proplist.Parse("# extracted from common tree\n# Common\nlib/x.so\n"))

	res := d.Filter(proplist.Parse("# Audio\nlib/a.so\n"))
	require.Equal(t, "# extracted from common tree\n\n# Audio\nlib/a.so\n", res.Output)
}

func TestFilterCommentOnlyLinesNeverMatch(t *testing.T) {
	d := dedup.New(nil)
	// Comment-only content lines normalize to "" and must not enter the set.
	d.LoadCommon(proplist.Parse("# Common\n  # note\nlib/x.so\n"))

	res := d.Filter(proplist.Parse("# Audio\n  # note\nlib/a.so\n"))
	require.Zero(t, res.Removed)
	require.Equal(t, "# Audio\n  # note\nlib/a.so\n", res.Output)
}

func TestFilterIdempotent(t *testing.T) {
	common := proplist.Parse("# Common\nlib/foo.so\nlib/bar.so\n")

	d := dedup.New(nil)
	d.LoadCommon(common)
	first := d.Filter(proplist.Parse("# Audio\nlib/foo.so\nlib/baz.so\n\n# Video\nlib/bar.so\n"))
	require.Equal(t, 2, first.Removed)

	d2 := dedup.New(nil)
	d2.LoadCommon(common)
	second := d2.Filter(proplist.Parse(first.Output))
	require.Zero(t, second.Removed)
	require.Equal(t, first.Output, second.Output)
}

func TestFilterLogging(t *testing.T) {
	log := &recordingLogger{}
	d := dedup.New(log)
	d.LoadCommon(proplist.Parse("# Common\nlib/foo.so\n"))

	d.Filter(proplist.Parse("# Audio\nlib/foo.so\nlib/baz.so\n"))

	require.Contains(t, log.verbose, "Loaded 1 entries from common file")
	require.Contains(t, log.verbose, "Removing duplicate: lib/foo.so")
	require.Contains(t, log.info, "Found 1 duplicates to remove")
}
