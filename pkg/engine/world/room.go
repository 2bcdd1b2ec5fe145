package world

// Room is a rectangular region of a Grid.
// The cells are shared with the grid; a Room never owns them.
type Room struct {
	cells []*Cell

	// Intact is recomputed by Grid.CheckRoomIsIntact every generation
	Intact bool
}

// NewRoom creates a room from cells scanned row-major over a solid rectangle.
// The first cell is taken as the top-left corner and the last as the
// bottom-right corner; the order is not checked.
func NewRoom(cells []*Cell) *Room {
	return &Room{cells: cells}
}

// Cells returns the member cells in row-major order
func (r *Room) Cells() []*Cell {
	return r.cells
}

// Start returns the top-left corner cell
func (r *Room) Start() *Cell {
	return r.cells[0]
}

// End returns the bottom-right corner cell
func (r *Room) End() *Cell {
	return r.cells[len(r.cells)-1]
}

// Width returns the number of columns the room spans, walls included
func (r *Room) Width() int {
	return r.End().Col - r.Start().Col + 1
}

// Height returns the number of rows the room spans, walls included
func (r *Room) Height() int {
	return r.End().Row - r.Start().Row + 1
}

// Contains checks if a row/col position lies inside the room's rectangle
func (r *Room) Contains(row, col int) bool {
	s, e := r.Start(), r.End()
	return row >= s.Row && row <= e.Row && col >= s.Col && col <= e.Col
}

// OnBorder checks if a row/col position lies on the room's wall ring
func (r *Room) OnBorder(row, col int) bool {
	if !r.Contains(row, col) {
		return false
	}
	s, e := r.Start(), r.End()
	return row == s.Row || row == e.Row || col == s.Col || col == e.Col
}

// Overlaps reports whether the two rectangles share at least one cell
func (r *Room) Overlaps(other *Room) bool {
	s, e := r.Start(), r.End()
	os, oe := other.Start(), other.End()
	return s.Row <= oe.Row && os.Row <= e.Row && s.Col <= oe.Col && os.Col <= e.Col
}

// SameRect reports whether both rooms cover exactly the same rectangle
func (r *Room) SameRect(other *Room) bool {
	return r.Start() == other.Start() && r.End() == other.End()
}

// Encloses reports whether other lies entirely inside r
func (r *Room) Encloses(other *Room) bool {
	os, oe := other.Start(), other.End()
	return r.Contains(os.Row, os.Col) && r.Contains(oe.Row, oe.Col)
}
