// Package display provides themed terminal output for the realign CLI:
// boxed section headers for stage boundaries and timestamped status lines
// for search and planner progress.
package display

import (
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

// Display handles all CLI output
type Display struct {
	theme     *Theme
	termWidth int
}

// New creates a Display instance
func New(noColor bool) *Display {
	d := &Display{termWidth: getTerminalWidth()}
	if noColor {
		d.theme = NoColorTheme()
	} else {
		d.theme = DefaultTheme()
	}
	return d
}

// getTerminalWidth returns the terminal width, defaulting to 80
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < 40 {
		return 80
	}
	if width > 120 {
		return 120 // Cap at 120 for readability
	}
	return width
}

// Banner prints a boxed section header with content lines
func (d *Display) Banner(title string, lines ...string) {
	width := d.termWidth - 2
	titleLen := len(title) + 4 // "─ TITLE "
	remaining := width - titleLen
	if remaining < 0 {
		remaining = 0
	}

	top := BoxTopLeft + BoxHorizontal + " " + title + " " + strings.Repeat(BoxHorizontal, remaining) + BoxTopRight
	fmt.Println(d.theme.Border(top))

	for _, line := range lines {
		padded := d.padRight(line, width-2)
		fmt.Println(d.theme.Border(BoxVertical) + " " + d.theme.Text(padded) + " " + d.theme.Border(BoxVertical))
	}

	bottom := BoxBottomLeft + strings.Repeat(BoxHorizontal, width) + BoxBottomRight
	fmt.Println(d.theme.Border(bottom))
}

// Status prints a single timestamped status line
func (d *Display) Status(symbol, message string) {
	timestamp := time.Now().Format("[15:04:05]")
	fmt.Printf("%s %s %s\n",
		d.theme.Dim(timestamp),
		symbol,
		d.theme.Text(message))
}

// Success prints a success message with green checkmark
func (d *Display) Success(message string) {
	d.Status(d.theme.Success(SymbolSuccess), message)
}

// Error prints an error message with red X
func (d *Display) Error(message string) {
	d.Status(d.theme.Error(SymbolError), message)
}

// Warning prints a warning message with yellow triangle
func (d *Display) Warning(message string) {
	d.Status(d.theme.Warning(SymbolWarning), message)
}

// Info prints a labeled info message
func (d *Display) Info(label, message string) {
	d.Status(d.theme.Info(label+":"), message)
}

// Step prints a numbered plan step
func (d *Display) Step(n int, text string) {
	fmt.Printf("  %s %s\n", d.theme.Bold(fmt.Sprintf("%d.", n)), d.theme.Text(text))
}

func (d *Display) padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
