// Package renderer turns a generated grid into output.
package renderer

import (
	"io"

	"evodungeon/pkg/engine/world"
)

// Renderer defines the interface for dungeon output backends.
// Implementations include plain text, the colored TUI and the Ebiten viewer.
type Renderer interface {
	// Name identifies the backend
	Name() string

	// Render writes the grid to w. Window backends may ignore w.
	Render(w io.Writer, g *world.Grid) error
}

// Current holds the active renderer instance
var Current Renderer = Plain{}

// SetRenderer sets the active renderer. nil restores plain text.
func SetRenderer(r Renderer) {
	if r == nil {
		r = Plain{}
	}
	Current = r
}

// Render renders the grid using the current renderer
func Render(w io.Writer, g *world.Grid) error {
	return Current.Render(w, g)
}

// Plain writes the grid's glyphs exactly as Grid.String renders them
type Plain struct{}

// Name returns the name of this renderer
func (Plain) Name() string {
	return "plain"
}

// Render writes the row-major glyph rendering
func (Plain) Render(w io.Writer, g *world.Grid) error {
	_, err := io.WriteString(w, g.String())
	return err
}
