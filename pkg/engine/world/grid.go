package world

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Grid is one candidate dungeon: a square of cells stored row-major plus the
// rooms carved into it.
type Grid struct {
	cells     []*Cell
	rooms     []*Room
	dimension int

	// Score is the fitness assigned by the last evaluation
	Score int
}

// NewGrid creates a dimension x dimension grid of free space with no rooms
func NewGrid(dimension int) *Grid {
	if dimension <= 0 {
		panic("Grid dimension must be positive")
	}

	g := &Grid{
		dimension: dimension,
		cells:     make([]*Cell, dimension*dimension),
	}
	for i := range g.cells {
		g.cells[i] = NewCell(FreeSpace, i/dimension, i%dimension)
	}
	return g
}

// Clone returns a deep copy of the grid. The copy shares no Cell or Room
// with g; each copied room points at the copied cells with the same
// coordinates.
func (g *Grid) Clone() *Grid {
	c := &Grid{
		dimension: g.dimension,
		cells:     make([]*Cell, len(g.cells)),
		rooms:     make([]*Room, 0, len(g.rooms)),
		Score:     g.Score,
	}
	for i, old := range g.cells {
		cell := NewCell(old.Type, old.Row, old.Col)
		cell.Immune = old.Immune
		c.cells[i] = cell
	}
	for _, old := range g.rooms {
		cells := make([]*Cell, len(old.cells))
		for i, oc := range old.cells {
			cells[i] = c.Cell(oc.Row, oc.Col)
		}
		room := NewRoom(cells)
		room.Intact = old.Intact
		c.rooms = append(c.rooms, room)
	}
	return c
}

// Dimension returns the side length of the grid
func (g *Grid) Dimension() int {
	return g.dimension
}

// Cells returns the row-major cell buffer
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// Rooms returns the rooms currently registered on the grid
func (g *Grid) Rooms() []*Room {
	return g.rooms
}

// IntactRooms returns the rooms whose last integrity check passed
func (g *Grid) IntactRooms() []*Room {
	var rooms []*Room
	for _, r := range g.rooms {
		if r.Intact {
			rooms = append(rooms, r)
		}
	}
	return rooms
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.dimension && col >= 0 && col < g.dimension
}

// Index maps a position to its offset in the cell buffer.
// Positions are not bounds checked unless built with the dungeondebug tag.
func (g *Grid) Index(row, col int) int {
	if boundsChecked && !g.IsValidPosition(row, col) {
		panic(fmt.Sprintf("world: position %d,%d outside %dx%d grid", row, col, g.dimension, g.dimension))
	}
	return row*g.dimension + col
}

// Cell returns the cell at the given position
func (g *Grid) Cell(row, col int) *Cell {
	return g.cells[g.Index(row, col)]
}

// CellType returns the type of the cell at the given position
func (g *Grid) CellType(row, col int) CellType {
	return g.Cell(row, col).Type
}

// SetCellType sets the type of the cell at the given position
func (g *Grid) SetCellType(row, col int, t CellType) {
	g.Cell(row, col).Type = t
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for _, cell := range g.cells {
		fn(cell.Row, cell.Col, cell)
	}
}

// CheckRoomIsIntact verifies the room's wall ring. When every corner and
// edge still holds its wall type the member cells become immune and the room
// is flagged intact. A failed check never clears immunity.
func (g *Grid) CheckRoomIsIntact(room *Room) bool {
	room.Intact = false
	if !g.hasWallRing(room) {
		return false
	}

	room.Intact = true
	for _, cell := range room.cells {
		cell.Immune = true
	}
	return true
}

// CheckRooms runs the integrity check over every room and returns how many
// are intact. A room whose ring is whole still fails when it repeats the
// rectangle of an earlier room or overlaps a whole room it does not sit
// inside, so intact rooms never share a cell. Failed rooms are flagged
// non-intact without touching immunity.
func (g *Grid) CheckRooms() int {
	whole := make([]bool, len(g.rooms))
	for i, room := range g.rooms {
		whole[i] = g.hasWallRing(room)
	}

	intact := 0
	for i, room := range g.rooms {
		room.Intact = false
		if !whole[i] || g.conflicts(i, whole) {
			continue
		}
		if g.CheckRoomIsIntact(room) {
			intact++
		}
	}
	return intact
}

// conflicts reports whether room i clashes with another whole room.
// Of identical rectangles only the first survives; of nested rectangles
// only the innermost.
func (g *Grid) conflicts(i int, whole []bool) bool {
	room := g.rooms[i]
	for j, other := range g.rooms {
		if j == i || !whole[j] || !room.Overlaps(other) {
			continue
		}
		if room.SameRect(other) {
			if j < i {
				return true
			}
			continue
		}
		if !other.Encloses(room) {
			return true
		}
	}
	return false
}

func (g *Grid) hasWallRing(room *Room) bool {
	start, end := room.Start(), room.End()

	if start.Type != WallTopLeft ||
		g.CellType(start.Row, end.Col) != WallTopRight ||
		g.CellType(end.Row, start.Col) != WallBottomLeft ||
		end.Type != WallBottomRight {
		return false
	}

	for col := start.Col + 1; col < end.Col; col++ {
		if g.CellType(start.Row, col) != WallHorizontal || g.CellType(end.Row, col) != WallHorizontal {
			return false
		}
	}

	for row := start.Row + 1; row < end.Row; row++ {
		if g.CellType(row, start.Col) != WallVertical || g.CellType(row, end.Col) != WallVertical {
			return false
		}
	}
	return true
}

// AddRoom carves a room with the given top-left and bottom-right corners.
// It returns false as soon as the row-major scan meets an immune cell;
// cells scanned before that point have already been reset to free space.
func (g *Grid) AddRoom(start, end *Cell) bool {
	cells := make([]*Cell, 0, (end.Row-start.Row+1)*(end.Col-start.Col+1))
	for row := start.Row; row <= end.Row; row++ {
		for col := start.Col; col <= end.Col; col++ {
			cell := g.Cell(row, col)
			if cell.Immune {
				return false
			}
			cell.Type = FreeSpace
			cells = append(cells, cell)
		}
	}

	start.Type = WallTopLeft
	g.SetCellType(start.Row, end.Col, WallTopRight)
	g.SetCellType(end.Row, start.Col, WallBottomLeft)
	end.Type = WallBottomRight

	for col := start.Col + 1; col < end.Col; col++ {
		g.SetCellType(start.Row, col, WallHorizontal)
		g.SetCellType(end.Row, col, WallHorizontal)
	}

	for row := start.Row + 1; row < end.Row; row++ {
		g.SetCellType(row, start.Col, WallVertical)
		g.SetCellType(row, end.Col, WallVertical)
	}

	g.rooms = append(g.rooms, NewRoom(cells))
	return true
}

// RemoveRoom detaches the room from the grid. Its cells keep their types.
func (g *Grid) RemoveRoom(room *Room) {
	for i, r := range g.rooms {
		if r == room {
			g.rooms = append(g.rooms[:i], g.rooms[i+1:]...)
			return
		}
	}
}

// Compare orders grids by score alone
func (g *Grid) Compare(other *Grid) int {
	switch {
	case g.Score < other.Score:
		return -1
	case g.Score > other.Score:
		return 1
	default:
		return 0
	}
}

// String renders the grid row-major, one line per row
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) * 3)
	for i, cell := range g.cells {
		sb.WriteString(cell.Type.Glyph())
		if (i+1)%g.dimension == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.dimension <= 0 || len(g.cells) != g.dimension*g.dimension {
		return "Grid has invalid dimensions"
	}

	starts, exits := 0, 0
	for _, cell := range g.cells {
		switch cell.Type {
		case Start:
			starts++
		case Exit:
			exits++
		}
	}
	if starts > 1 {
		return fmt.Sprintf("Grid has %d start cells", starts)
	}
	if exits > 1 {
		return fmt.Sprintf("Grid has %d exit cells", exits)
	}

	walls := mapset.New[*Cell]()
	for i, room := range g.rooms {
		s, e := room.Start(), room.End()
		if !g.IsValidPosition(s.Row, s.Col) || !g.IsValidPosition(e.Row, e.Col) {
			return fmt.Sprintf("Room %d lies outside the grid", i)
		}
		if !room.Intact {
			continue
		}
		for _, cell := range room.cells {
			if !room.OnBorder(cell.Row, cell.Col) {
				continue
			}
			if walls.Has(cell) {
				return fmt.Sprintf("Room %d shares wall cell %d,%d with another intact room", i, cell.Row, cell.Col)
			}
			walls.Put(cell)
		}
		for j := i + 1; j < len(g.rooms); j++ {
			if other := g.rooms[j]; other.Intact && room.Overlaps(other) {
				return fmt.Sprintf("Room %d overlaps room %d", i, j)
			}
		}
	}

	return ""
}
