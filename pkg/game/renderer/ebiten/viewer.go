package ebiten

import (
	"fmt"
	"image/color"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"evodungeon/pkg/engine/world"
	"evodungeon/pkg/game/renderer"
)

var (
	_ ebiten.Game       = (*EbitenRenderer)(nil)
	_ renderer.Renderer = (*EbitenRenderer)(nil)
)

// EbitenRenderer shows a grid in a window until it is closed or Esc is pressed
type EbitenRenderer struct {
	grid     *world.Grid
	tileSize int
	debug    bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{tileSize: defaultTileSize}
}

// Name returns the name of this renderer
func (e *EbitenRenderer) Name() string {
	return "ebiten"
}

// Render opens the window and blocks until it is closed. w is not used.
func (e *EbitenRenderer) Render(_ io.Writer, g *world.Grid) error {
	e.grid = g
	side := g.Dimension() * e.tileSize
	ebiten.SetWindowSize(side, side+hudHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(e)
}

// Update handles zoom, debug toggle and exit keys (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.tileSize = min(e.tileSize+2, maxTileSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.tileSize = max(e.tileSize-2, minTileSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		e.debug = !e.debug
	}
	return nil
}

// Draw renders the grid to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.grid == nil {
		return
	}

	e.grid.ForEachCell(func(row, col int, cell *world.Cell) {
		e.drawCell(screen, float32(col*e.tileSize), float32(row*e.tileSize), cell)
	})

	help := fmt.Sprintf("%dx%d  rooms %d  +/- zoom  d debug  esc quit",
		e.grid.Dimension(), e.grid.Dimension(), len(e.grid.Rooms()))
	ebitenutil.DebugPrintAt(screen, help, 4, e.grid.Dimension()*e.tileSize+2)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *EbitenRenderer) drawCell(screen *ebiten.Image, x, y float32, cell *world.Cell) {
	size := float32(e.tileSize)
	bg := colorFloor
	if e.debug {
		bg = colorMutable
		if cell.Immune {
			bg = colorImmune
		}
	}
	vector.DrawFilledRect(screen, x, y, size, size, bg, false)

	half := size / 2
	thick := max(size*wallThickness, 1)
	mid := half - thick/2

	switch cell.Type {
	case world.WallHorizontal:
		vector.DrawFilledRect(screen, x, y+mid, size, thick, colorWall, false)
	case world.WallVertical:
		vector.DrawFilledRect(screen, x+mid, y, thick, size, colorWall, false)
	case world.WallTopLeft:
		vector.DrawFilledRect(screen, x+mid, y+mid, size-mid, thick, colorWall, false)
		vector.DrawFilledRect(screen, x+mid, y+mid, thick, size-mid, colorWall, false)
	case world.WallTopRight:
		vector.DrawFilledRect(screen, x, y+mid, mid+thick, thick, colorWall, false)
		vector.DrawFilledRect(screen, x+mid, y+mid, thick, size-mid, colorWall, false)
	case world.WallBottomLeft:
		vector.DrawFilledRect(screen, x+mid, y+mid, size-mid, thick, colorWall, false)
		vector.DrawFilledRect(screen, x+mid, y, thick, mid+thick, colorWall, false)
	case world.WallBottomRight:
		vector.DrawFilledRect(screen, x, y+mid, mid+thick, thick, colorWall, false)
		vector.DrawFilledRect(screen, x+mid, y, thick, mid+thick, colorWall, false)
	case world.Start:
		e.drawMarker(screen, x, y, colorStart)
	case world.Exit:
		e.drawMarker(screen, x, y, colorExit)
	case world.Monster:
		vector.DrawFilledCircle(screen, x+half, y+half, size/3, colorMonster, true)
	case world.Treasure:
		vector.DrawFilledCircle(screen, x+half, y+half, size/3, colorTreasure, true)
	}
}

// drawMarker draws an outlined door tile
func (e *EbitenRenderer) drawMarker(screen *ebiten.Image, x, y float32, clr color.Color) {
	size := float32(e.tileSize)
	inset := size / 6
	vector.DrawFilledRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, clr, false)
	vector.StrokeRect(screen, x+inset, y+inset, size-2*inset, size-2*inset, 1, colorText, false)
}
