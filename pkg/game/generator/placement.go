package generator

import (
	"go.uber.org/zap"

	"evodungeon/pkg/engine/world"
)

// AddRoom tries to carve one randomly sized and positioned room into the grid.
// Width and height are drawn from [3, max(dimension/4, 3)); the width offsets
// the end row and the height the end column. It returns false when the
// rectangle would leave the grid or hits an immune cell; callers retry.
func (e *Evolutionary) AddRoom(g *world.Grid) bool {
	dimension := g.Dimension()
	upper := max(dimension/4, minRoomSpan)

	width := between(e.rng, minRoomSpan, upper)
	height := between(e.rng, minRoomSpan, upper)
	if width >= dimension || height >= dimension {
		return false
	}

	startRow := between(e.rng, 0, dimension-width)
	startCol := between(e.rng, 0, dimension-height)

	start := g.Cell(startRow, startCol)
	end := g.Cell(startRow+width, startCol+height)
	return g.AddRoom(start, end)
}

// AddDoor places a start (entrance) or exit cell on a random outer wall.
// A target already holding a start or exit is redrawn.
// The generation loop never calls this; it is an optional finishing step.
func (e *Evolutionary) AddDoor(g *world.Grid, entrance bool) error {
	dimension := g.Dimension()
	doorType := world.Exit
	if entrance {
		doorType = world.Start
	}

	walls := world.AllDirections()
	for attempt := 1; ; attempt++ {
		wall := walls[e.rng.Intn(len(walls))]
		index := between(e.rng, 1, dimension-2)
		row, col := wall.WallPosition(dimension, index)

		if !g.CellType(row, col).IsDoor() {
			g.SetCellType(row, col, doorType)
			e.logger.Debug("door placed",
				zap.Stringer("wall", wall),
				zap.Stringer("type", doorType),
				zap.Int("row", row),
				zap.Int("col", col),
				zap.Int("attempts", attempt))
			return nil
		}
		if e.maxDoorAttempts > 0 && attempt >= e.maxDoorAttempts {
			return ErrDoorPlacement
		}
	}
}

// PlaceDoors adds one entrance and one exit to the grid
func (e *Evolutionary) PlaceDoors(g *world.Grid) error {
	if err := e.AddDoor(g, true); err != nil {
		return err
	}
	return e.AddDoor(g, false)
}
