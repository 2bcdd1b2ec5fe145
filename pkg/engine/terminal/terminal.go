package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FitsWidth reports whether a line of cols glyphs fits on one terminal row.
// Output that is not a terminal always fits.
func FitsWidth(cols int) bool {
	if !IsTerminal() {
		return true
	}
	return Fits(cols, GetWidth())
}

// Fits reports whether cols glyphs fit in a row of the given width
func Fits(cols, width int) bool {
	return width <= 0 || cols <= width
}
