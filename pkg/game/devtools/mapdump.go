// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"evodungeon/pkg/engine/world"
)

// DefaultMapDumpFilename is used when no dump path is given
const DefaultMapDumpFilename = "map.txt"

// Metadata describes the run that produced a dumped grid
type Metadata struct {
	Seed           int64
	RequestedRooms int
	PopulationSize int
	Generation     int
	TargetScore    int
}

// DumpMapToFile writes a full debug dump of g to path and returns its absolute path.
// The dump holds metadata, a legend, the rendered map, the room list and any
// Validate findings, one section each.
func DumpMapToFile(path string, g *world.Grid, meta Metadata) (string, error) {
	if g == nil {
		return "", fmt.Errorf("no grid")
	}
	if path == "" {
		path = DefaultMapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g, meta); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// WriteMapDump writes the dump sections to w
func WriteMapDump(w io.Writer, g *world.Grid, meta Metadata) error {
	ew := &errWriter{w: w}

	ew.println("=== MAP DUMP DEBUG (evolutionary dungeon) ===")
	ew.println("")
	ew.println("--- Metadata ---")
	ew.printf("seed: %d\n", meta.Seed)
	ew.printf("dimension: %d\n", g.Dimension())
	ew.printf("requested_rooms: %d\n", meta.RequestedRooms)
	ew.printf("population_size: %d\n", meta.PopulationSize)
	ew.printf("generation: %d\n", meta.Generation)
	ew.printf("score: %d\n", g.Score)
	ew.printf("target_score: %d\n", meta.TargetScore)
	ew.println("coordinate_system: row,col (0-based, row=vertical, col=horizontal)")
	ew.println("")

	ew.println("--- Legend ---")
	for _, t := range world.AllCellTypes() {
		ew.printf("%q  %s\n", t.Glyph(), t.Name())
	}
	ew.println("")

	ew.println("--- Map ---")
	ew.printf("%s", g.String())
	ew.println("")

	ew.println("--- Rooms ---")
	for i, room := range g.Rooms() {
		s, e := room.Start(), room.End()
		ew.printf("room_%d: start=%d,%d end=%d,%d intact=%v\n", i, s.Row, s.Col, e.Row, e.Col, room.Intact)
	}
	ew.printf("intact_rooms: %d\n", len(g.IntactRooms()))
	ew.println("")

	ew.println("--- Validation ---")
	if problems := g.Validate(); problems != "" {
		ew.println(problems)
	} else {
		ew.println("ok")
	}

	return ew.err
}

// errWriter keeps the first write error and skips later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (ew *errWriter) println(s string) {
	ew.printf("%s\n", s)
}
