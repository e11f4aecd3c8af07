// Package output implements the colored console surface: info/error log
// lines and the dry-run removal listing.
package output

import (
	"fmt"
	"io"
)

// ANSI color codes
const (
	reset = "\033[0m"
	red   = "\033[31m"
	green = "\033[32m"
	cyan  = "\033[36m"
)

// Console writes prefixed log lines to Out (info) and Err (errors).
// Verbosef lines are dropped unless Verbose is set; NoColor strips ANSI
// codes for pipes and NO_COLOR environments.
type Console struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool
	NoColor bool
}

func (c *Console) color(code, text string) string {
	if c.NoColor {
		return text
	}
	return code + text + reset
}

// Infof prints a green [INFO] line to Out.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.Out, "%s %s\n", c.color(green, "[INFO]"), fmt.Sprintf(format, args...))
}

// Verbosef prints an [INFO] line only when Verbose is enabled.
func (c *Console) Verbosef(format string, args ...any) {
	if !c.Verbose {
		return
	}
	c.Infof(format, args...)
}

// Errorf prints a red [ERROR] line to Err.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintf(c.Err, "%s %s\n", c.color(red, "[ERROR]"), fmt.Sprintf(format, args...))
}

// PrintRemovals lists the lines a dry run would delete, one red "- line"
// per entry, under a cyan heading.
func (c *Console) PrintRemovals(lines []string) {
	fmt.Fprintf(c.Out, "\n%s\n", c.color(cyan, "Changes to be made:"))
	for _, line := range lines {
		fmt.Fprintf(c.Out, "%s\n", c.color(red, "- "+line))
	}
}
