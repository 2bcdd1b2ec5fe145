package tui

import (
	"io"
	"strings"

	"github.com/gookit/color"

	"evodungeon/pkg/engine/terminal"
	"evodungeon/pkg/engine/world"
	"evodungeon/pkg/game/renderer"
)

var _ renderer.Renderer = (*TUIRenderer)(nil)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	// Color enables ANSI styling. With Color off the output matches Grid.String.
	Color bool
	// Debug paints the background of every cell by immunity
	Debug bool

	colorWall     color.Style
	colorDoor     color.Style
	colorMonster  color.Style
	colorTreasure color.Style
	colorImmune   color.Style
	colorMutable  color.Style
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{Color: true}
	t.Init()
	return t
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorDoor = color.Style{color.FgGreen, color.OpBold}
	t.colorMonster = color.Style{color.FgRed, color.OpBold}
	t.colorTreasure = color.Style{color.FgYellow, color.OpBold}
	t.colorImmune = color.Style{color.FgWhite, color.BgBlue}
	t.colorMutable = color.Style{color.FgWhite, color.BgRed}
}

// Name returns the name of this renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// FitsTerminal reports whether a grid row fits the width of the attached terminal
func (t *TUIRenderer) FitsTerminal(g *world.Grid) bool {
	return terminal.FitsWidth(g.Dimension())
}

// Render writes the grid one row per line
func (t *TUIRenderer) Render(w io.Writer, g *world.Grid) error {
	d := g.Dimension()
	var sb strings.Builder
	for row := 0; row < d; row++ {
		for col := 0; col < d; col++ {
			sb.WriteString(t.renderCell(g.Cell(row, col)))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *TUIRenderer) renderCell(c *world.Cell) string {
	glyph := c.Type.Glyph()
	if !t.Color {
		return glyph
	}

	if t.Debug {
		if c.Immune {
			return t.colorImmune.Sprint(glyph)
		}
		return t.colorMutable.Sprint(glyph)
	}

	switch {
	case c.Type.IsDoor():
		return t.colorDoor.Sprint(glyph)
	case c.Type.IsWall():
		return t.colorWall.Sprint(glyph)
	case c.Type == world.Monster:
		return t.colorMonster.Sprint(glyph)
	case c.Type == world.Treasure:
		return t.colorTreasure.Sprint(glyph)
	}
	return glyph
}
