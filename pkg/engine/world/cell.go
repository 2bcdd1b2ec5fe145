// Package world provides the grid primitives the dungeon generator evolves:
// cells, rooms, and the square grid that owns them.
package world

// CellType tags what occupies a single grid position
type CellType int

// CellType constants
const (
	Start     CellType = iota // Only one start per dungeon
	Exit                      // Only one exit per dungeon
	FreeSpace                 // Doors between rooms and empty space inside rooms
	WallVertical
	WallHorizontal
	WallTopLeft
	WallTopRight
	WallBottomLeft
	WallBottomRight
	Monster  // Must never block a passage between rooms
	Treasure // Same as Monster
)

var cellGlyphs = map[CellType]string{
	Start:           "S",
	Exit:            "E",
	FreeSpace:       " ",
	WallVertical:    "║",
	WallHorizontal:  "═",
	WallTopLeft:     "╔",
	WallTopRight:    "╗",
	WallBottomLeft:  "╚",
	WallBottomRight: "╝",
	Monster:         "M",
	Treasure:        "T",
}

var cellNames = map[CellType]string{
	Start:           "start",
	Exit:            "exit",
	FreeSpace:       "free_space",
	WallVertical:    "wall_vertical",
	WallHorizontal:  "wall_horizontal",
	WallTopLeft:     "wall_top_left",
	WallTopRight:    "wall_top_right",
	WallBottomLeft:  "wall_bottom_left",
	WallBottomRight: "wall_bottom_right",
	Monster:         "monster",
	Treasure:        "treasure",
}

// AllCellTypes returns every cell type in declaration order
func AllCellTypes() []CellType {
	return []CellType{
		Start, Exit, FreeSpace,
		WallVertical, WallHorizontal,
		WallTopLeft, WallTopRight, WallBottomLeft, WallBottomRight,
		Monster, Treasure,
	}
}

// Glyph returns the one-character display form of the type
func (t CellType) Glyph() string {
	if g, ok := cellGlyphs[t]; ok {
		return g
	}
	return "?"
}

// Name returns a lower-case identifier for the type, used in dumps
func (t CellType) Name() string {
	if n, ok := cellNames[t]; ok {
		return n
	}
	return "unknown"
}

// String returns the glyph
func (t CellType) String() string {
	return t.Glyph()
}

// IsWall returns true for the straight and corner wall types
func (t CellType) IsWall() bool {
	return t >= WallVertical && t <= WallBottomRight
}

// IsDoor returns true for Start and Exit
func (t CellType) IsDoor() bool {
	return t == Start || t == Exit
}

// Cell represents a single grid position.
// Row and Col are fixed once the owning grid is built; Type and Immune change
// while the generator runs.
type Cell struct {
	Type CellType

	Row int
	Col int

	// Immune is set once the cell belongs to a room verified intact.
	// Nothing in this package ever clears it.
	Immune bool
}

// NewCell creates a new cell at the given position
func NewCell(t CellType, row, col int) *Cell {
	return &Cell{
		Type: t,
		Row:  row,
		Col:  col,
	}
}

// String returns the glyph for the cell's type
func (c *Cell) String() string {
	return c.Type.Glyph()
}
