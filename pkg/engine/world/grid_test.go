package world

import (
	"strings"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// carve adds a room between two positions and fails the test if it is rejected.
func carve(t *testing.T, g *Grid, r1, c1, r2, c2 int) *Room {
	t.Helper()
	if !g.AddRoom(g.Cell(r1, c1), g.Cell(r2, c2)) {
		t.Fatalf("AddRoom(%d,%d -> %d,%d) = false, want true", r1, c1, r2, c2)
	}
	rooms := g.Rooms()
	return rooms[len(rooms)-1]
}

func TestNewGrid_AllFreeSpaceRowMajor(t *testing.T) {
	g := NewGrid(4)
	if len(g.Cells()) != 16 {
		t.Fatalf("len(Cells()) = %d, want 16", len(g.Cells()))
	}
	for i, cell := range g.Cells() {
		if cell.Type != FreeSpace {
			t.Errorf("cell %d type = %v, want FreeSpace", i, cell.Type)
		}
		if cell.Row != i/4 || cell.Col != i%4 {
			t.Errorf("cell %d at %d,%d, want %d,%d", i, cell.Row, cell.Col, i/4, i%4)
		}
		if cell.Immune {
			t.Errorf("cell %d is immune on a fresh grid", i)
		}
	}
	if len(g.Rooms()) != 0 {
		t.Errorf("len(Rooms()) = %d, want 0", len(g.Rooms()))
	}
}

func TestNewGrid_PanicsOnNonPositiveDimension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0) did not panic")
		}
	}()
	NewGrid(0)
}

func TestIndex_RowMajor(t *testing.T) {
	g := NewGrid(7)
	if got := g.Index(3, 2); got != 23 {
		t.Errorf("Index(3, 2) = %d, want 23", got)
	}
	if g.Cell(3, 2) != g.Cells()[23] {
		t.Error("Cell(3, 2) is not the cell at offset 23")
	}
}

func TestAddRoom_WritesWallRing(t *testing.T) {
	g := NewGrid(5)
	room := carve(t, g, 0, 0, 2, 3)

	want := "" +
		"╔══╗ \n" +
		"║  ║ \n" +
		"╚══╝ \n" +
		"     \n" +
		"     \n"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	if len(room.Cells()) != 12 {
		t.Errorf("len(room.Cells()) = %d, want 12", len(room.Cells()))
	}
	if room.Start() != g.Cell(0, 0) || room.End() != g.Cell(2, 3) {
		t.Error("room corners do not match the requested cells")
	}
	if room.Width() != 4 || room.Height() != 3 {
		t.Errorf("room size = %dx%d, want 4x3", room.Width(), room.Height())
	}
}

func TestCheckRoomIsIntact_FreshRoomBecomesImmune(t *testing.T) {
	g := NewGrid(9)
	room := carve(t, g, 2, 2, 6, 5)

	if !g.CheckRoomIsIntact(room) {
		t.Fatal("CheckRoomIsIntact = false for a freshly placed room")
	}
	if !room.Intact {
		t.Error("room.Intact = false after a passing check")
	}
	for _, cell := range room.Cells() {
		if !cell.Immune {
			t.Errorf("cell %d,%d not immune after a passing check", cell.Row, cell.Col)
		}
	}
	g.ForEachCell(func(row, col int, cell *Cell) {
		if !room.Contains(row, col) && cell.Immune {
			t.Errorf("cell %d,%d outside the room became immune", row, col)
		}
	})
}

func TestCheckRoomIsIntact_DamagedWalls(t *testing.T) {
	cases := []struct {
		name     string
		row, col int
	}{
		{"top left", 1, 1},
		{"top right", 1, 5},
		{"bottom left", 4, 1},
		{"bottom right", 4, 5},
		{"top edge", 1, 3},
		{"bottom edge", 4, 2},
		{"left edge", 2, 1},
		{"right edge", 3, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(8)
			room := carve(t, g, 1, 1, 4, 5)
			g.SetCellType(tc.row, tc.col, Monster)

			if g.CheckRoomIsIntact(room) {
				t.Fatal("CheckRoomIsIntact = true with a damaged wall")
			}
			if room.Intact {
				t.Error("room.Intact = true after a failing check")
			}
			for _, cell := range room.Cells() {
				if cell.Immune {
					t.Errorf("cell %d,%d became immune after a failing check", cell.Row, cell.Col)
				}
			}
		})
	}
}

func TestCheckRoomIsIntact_FailureKeepsImmunity(t *testing.T) {
	g := NewGrid(8)
	room := carve(t, g, 0, 0, 3, 3)
	if !g.CheckRoomIsIntact(room) {
		t.Fatal("first check failed")
	}

	g.SetCellType(0, 1, FreeSpace)
	if g.CheckRoomIsIntact(room) {
		t.Fatal("second check passed with a broken wall")
	}
	for _, cell := range room.Cells() {
		if !cell.Immune {
			t.Errorf("cell %d,%d lost immunity", cell.Row, cell.Col)
		}
	}
}

func TestAddRoom_RejectsImmuneCells(t *testing.T) {
	g := NewGrid(10)
	first := carve(t, g, 4, 4, 7, 7)
	g.CheckRoomIsIntact(first)
	before := g.String()

	// Scan order reaches the immune corner 4,4 after resetting row 2, row 3
	// and 4,2..4,3. Everything else, the immune room included, is untouched.
	g.SetCellType(2, 2, Treasure)
	g.SetCellType(5, 2, Monster)
	g.SetCellType(9, 9, Monster)

	if g.AddRoom(g.Cell(2, 2), g.Cell(6, 6)) {
		t.Fatal("AddRoom over an immune room = true, want false")
	}
	if len(g.Rooms()) != 1 {
		t.Errorf("len(Rooms()) = %d, want 1", len(g.Rooms()))
	}
	if g.CellType(2, 2) != FreeSpace {
		t.Errorf("scanned cell 2,2 = %v, want free space", g.CellType(2, 2))
	}
	if g.CellType(5, 2) != Monster {
		t.Errorf("unscanned cell 5,2 = %v, want Monster", g.CellType(5, 2))
	}
	if g.CellType(9, 9) != Monster {
		t.Errorf("cell 9,9 outside the rectangle = %v, want Monster", g.CellType(9, 9))
	}

	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(g.String(), "\n")
	for row := 4; row <= 7; row++ {
		b := []rune(beforeLines[row])[4:8]
		a := []rune(afterLines[row])[4:8]
		if string(a) != string(b) {
			t.Errorf("immune row %d changed: %q -> %q", row, string(b), string(a))
		}
	}
}

func TestAddRoom_OverwritesMutableCells(t *testing.T) {
	g := NewGrid(6)
	carve(t, g, 0, 0, 3, 3)
	second := carve(t, g, 1, 1, 4, 4)

	if !g.CheckRoomIsIntact(second) {
		t.Error("newest room is not intact")
	}
	if g.CheckRoomIsIntact(g.Rooms()[0]) {
		t.Error("overwritten room is still intact")
	}
}

func TestRemoveRoom_KeepsCellTypes(t *testing.T) {
	g := NewGrid(6)
	a := carve(t, g, 0, 0, 2, 2)
	b := carve(t, g, 3, 3, 5, 5)
	rendered := g.String()

	g.RemoveRoom(a)
	if len(g.Rooms()) != 1 || g.Rooms()[0] != b {
		t.Fatalf("Rooms() after removal = %v, want only the second room", g.Rooms())
	}
	if g.String() != rendered {
		t.Error("RemoveRoom changed cell types")
	}

	g.RemoveRoom(a)
	if len(g.Rooms()) != 1 {
		t.Error("removing a detached room changed the room list")
	}
}

func TestClone_IsIndependent(t *testing.T) {
	g := NewGrid(8)
	intact := carve(t, g, 0, 0, 3, 3)
	carve(t, g, 4, 4, 7, 7)
	g.CheckRoomIsIntact(intact)
	g.SetCellType(5, 5, Treasure)
	g.Score = 10

	c := g.Clone()

	if c.String() != g.String() {
		t.Fatal("clone renders differently")
	}
	if c.Score != g.Score || c.Dimension() != g.Dimension() {
		t.Errorf("clone score/dimension = %d/%d, want %d/%d", c.Score, c.Dimension(), g.Score, g.Dimension())
	}
	for i := range g.Cells() {
		if g.Cells()[i].Immune != c.Cells()[i].Immune {
			t.Errorf("cell %d immunity differs", i)
		}
	}
	if len(c.Rooms()) != len(g.Rooms()) {
		t.Fatalf("clone has %d rooms, want %d", len(c.Rooms()), len(g.Rooms()))
	}

	source := mapset.New[*Cell]()
	for _, cell := range g.Cells() {
		source.Put(cell)
	}
	for i, room := range c.Rooms() {
		if room == g.Rooms()[i] {
			t.Errorf("room %d is shared with the source", i)
		}
		if room.Intact != g.Rooms()[i].Intact {
			t.Errorf("room %d intact = %v, want %v", i, room.Intact, g.Rooms()[i].Intact)
		}
		for _, cell := range room.Cells() {
			if source.Has(cell) {
				t.Fatalf("room %d references a source cell at %d,%d", i, cell.Row, cell.Col)
			}
			if c.Cell(cell.Row, cell.Col) != cell {
				t.Fatalf("room %d cell %d,%d is not the clone's own cell", i, cell.Row, cell.Col)
			}
		}
	}

	c.SetCellType(0, 0, Monster)
	c.Cell(6, 6).Immune = true
	if g.CellType(0, 0) != WallTopLeft {
		t.Error("mutating the clone changed the source")
	}
	if g.Cell(6, 6).Immune {
		t.Error("clone immunity leaked into the source")
	}
	g.SetCellType(7, 7, Exit)
	if c.CellType(7, 7) == Exit {
		t.Error("mutating the source changed the clone")
	}
}

func TestCompare_ByScore(t *testing.T) {
	a, b := NewGrid(3), NewGrid(5)
	a.Score, b.Score = 10, 20
	if a.Compare(b) >= 0 || b.Compare(a) <= 0 {
		t.Error("Compare does not order by score")
	}
	b.Score = 10
	if a.Compare(b) != 0 {
		t.Error("equal scores do not compare equal")
	}
}

func TestGlyphs(t *testing.T) {
	want := map[CellType]string{
		Start: "S", Exit: "E", FreeSpace: " ",
		WallVertical: "║", WallHorizontal: "═",
		WallTopLeft: "╔", WallTopRight: "╗", WallBottomLeft: "╚", WallBottomRight: "╝",
		Monster: "M", Treasure: "T",
	}
	for _, ct := range AllCellTypes() {
		if got := NewCell(ct, 0, 0).String(); got != want[ct] {
			t.Errorf("glyph for %d = %q, want %q", ct, got, want[ct])
		}
	}
	if CellType(99).Glyph() != "?" {
		t.Error("unknown type does not render as ?")
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		g := NewGrid(8)
		a := carve(t, g, 0, 0, 3, 3)
		b := carve(t, g, 4, 4, 7, 7)
		g.CheckRoomIsIntact(a)
		g.CheckRoomIsIntact(b)
		g.SetCellType(0, 5, Start)
		g.SetCellType(7, 0, Exit)
		if msg := g.Validate(); msg != "" {
			t.Errorf("Validate() = %q, want empty", msg)
		}
	})

	t.Run("two starts", func(t *testing.T) {
		g := NewGrid(4)
		g.SetCellType(0, 1, Start)
		g.SetCellType(3, 1, Start)
		if g.Validate() == "" {
			t.Error("Validate() accepted two start cells")
		}
	})

	t.Run("two exits", func(t *testing.T) {
		g := NewGrid(4)
		g.SetCellType(0, 1, Exit)
		g.SetCellType(3, 1, Exit)
		if g.Validate() == "" {
			t.Error("Validate() accepted two exit cells")
		}
	})

	t.Run("nested intact rooms", func(t *testing.T) {
		g := NewGrid(10)
		outer := carve(t, g, 0, 0, 8, 8)
		inner := carve(t, g, 2, 2, 5, 5)
		outer.Intact = true
		inner.Intact = true
		if msg := g.Validate(); !strings.Contains(msg, "overlaps") {
			t.Errorf("Validate() = %q, want an overlap report", msg)
		}
	})

	t.Run("shared walls", func(t *testing.T) {
		g := NewGrid(6)
		a := carve(t, g, 0, 0, 3, 3)
		g.CheckRoomIsIntact(a)
		// A second room over the same rectangle, registered without carving.
		dup := NewRoom(a.Cells())
		dup.Intact = true
		g.rooms = append(g.rooms, dup)
		if g.Validate() == "" {
			t.Error("Validate() accepted two intact rooms sharing walls")
		}
	})
}

func TestCheckRooms_DuplicateRectangleCountsOnce(t *testing.T) {
	g := NewGrid(8)
	first := carve(t, g, 1, 1, 4, 4)
	second := carve(t, g, 1, 1, 4, 4)

	if n := g.CheckRooms(); n != 1 {
		t.Fatalf("CheckRooms() = %d, want 1", n)
	}
	if !first.Intact || second.Intact {
		t.Errorf("Intact = %v, %v, want true, false", first.Intact, second.Intact)
	}
	if n := strings.Count(g.String(), "╔"); n != len(g.IntactRooms()) {
		t.Errorf("rendering has %d top-left corners, want %d", n, len(g.IntactRooms()))
	}
	if msg := g.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want empty", msg)
	}
}

func TestCheckRooms_NestedKeepsInnerRoom(t *testing.T) {
	g := NewGrid(10)
	outer := carve(t, g, 0, 0, 8, 8)
	inner := carve(t, g, 2, 2, 5, 5)

	if n := g.CheckRooms(); n != 1 {
		t.Fatalf("CheckRooms() = %d, want 1", n)
	}
	if outer.Intact || !inner.Intact {
		t.Errorf("Intact = %v, %v, want false, true", outer.Intact, inner.Intact)
	}
	if g.Cell(0, 0).Immune || g.Cell(8, 8).Immune {
		t.Error("the rejected outer ring became immune")
	}
	if !g.Cell(2, 2).Immune {
		t.Error("the inner room did not become immune")
	}
}

func TestCheckRooms_DisjointAndBroken(t *testing.T) {
	g := NewGrid(10)
	carve(t, g, 0, 0, 3, 3)
	carve(t, g, 5, 5, 9, 9)
	carve(t, g, 2, 2, 6, 6) // breaks both earlier rooms

	if n := g.CheckRooms(); n != 1 {
		t.Errorf("CheckRooms() = %d, want 1", n)
	}

	g = NewGrid(10)
	carve(t, g, 0, 0, 3, 3)
	carve(t, g, 5, 5, 9, 9)
	if n := g.CheckRooms(); n != 2 {
		t.Errorf("CheckRooms() = %d, want 2", n)
	}
}

func TestRoom_Rectangles(t *testing.T) {
	g := NewGrid(10)
	a := NewRoom([]*Cell{g.Cell(0, 0), g.Cell(4, 4)})
	b := NewRoom([]*Cell{g.Cell(1, 1), g.Cell(3, 3)})
	c := NewRoom([]*Cell{g.Cell(4, 4), g.Cell(6, 6)})
	d := NewRoom([]*Cell{g.Cell(5, 0), g.Cell(9, 3)})

	cases := []struct {
		name string
		got  bool
		want bool
	}{
		{"a overlaps b", a.Overlaps(b), true},
		{"a overlaps c at a corner", a.Overlaps(c), true},
		{"a overlaps d", a.Overlaps(d), false},
		{"a encloses b", a.Encloses(b), true},
		{"b encloses a", b.Encloses(a), false},
		{"a encloses c", a.Encloses(c), false},
		{"a same as itself", a.SameRect(NewRoom([]*Cell{g.Cell(0, 0), g.Cell(4, 4)})), true},
		{"a same as b", a.SameRect(b), false},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestDirection_WallPosition(t *testing.T) {
	cases := []struct {
		dir      Direction
		row, col int
	}{
		{North, 0, 3},
		{East, 3, 9},
		{South, 9, 3},
		{West, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			row, col := tc.dir.WallPosition(10, 3)
			if row != tc.row || col != tc.col {
				t.Errorf("WallPosition(10, 3) = %d,%d, want %d,%d", row, col, tc.row, tc.col)
			}
		})
	}
}
