// Package generator builds dungeons by evolving a population of candidate grids.
package generator

import (
	"math"

	"evodungeon/pkg/engine/world"
)

// GridGenerator is an interface for dungeon generation algorithms
type GridGenerator interface {
	Generate(dimension, roomCount int) (*world.Grid, error)
	Name() string
}

var _ GridGenerator = (*Evolutionary)(nil)

// Constants for room generation
const (
	minRoomSpan   = 3  // Smallest width/height drawn for a room
	minRoomCells  = 9  // Footprint a room needs at the very least
	pointsPerRoom = 10 // Score awarded for each intact room

	DefaultPopulationSize = 10
)

// MinDimension returns the smallest dimension that can conceivably hold
// roomCount rooms of minRoomCells cells each
func MinDimension(roomCount int) int {
	return int(math.Ceil(math.Sqrt(float64(minRoomCells * roomCount))))
}

// TargetScore returns the score a dungeon needs for roomCount rooms
func TargetScore(roomCount int) int {
	return roomCount * pointsPerRoom
}
