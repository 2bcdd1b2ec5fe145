package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionTooSmall matches any *DimensionTooSmallError
	ErrDimensionTooSmall = errors.New("dungeon dimension too small")

	// ErrInvalidRoomCount is returned when fewer than one room is requested
	ErrInvalidRoomCount = errors.New("room count must be positive")

	// ErrPlacementExhausted is wrapped by *PlacementError
	ErrPlacementExhausted = errors.New("room placement attempts exhausted")

	// ErrGenerationLimit is returned when the generation bound is reached
	// before any dungeon meets the score target
	ErrGenerationLimit = errors.New("generation limit reached")

	// ErrDoorPlacement is returned when no free wall cell was found for a door
	// within the configured attempts
	ErrDoorPlacement = errors.New("door placement attempts exhausted")
)

// DimensionTooSmallError reports a dimension that cannot hold the requested rooms
type DimensionTooSmallError struct {
	Dimension int
	Minimum   int
}

func (e *DimensionTooSmallError) Error() string {
	return fmt.Sprintf("dungeon dimension must be at least %d (min total size is 9 * rooms), got %d", e.Minimum, e.Dimension)
}

// Is reports whether target is ErrDimensionTooSmall
func (e *DimensionTooSmallError) Is(target error) bool {
	return target == ErrDimensionTooSmall
}

// PlacementError reports a repair that never found room for a replacement
type PlacementError struct {
	Dimension int
	Attempts  int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("could not place a room in a %dx%d dungeon after %d attempts", e.Dimension, e.Dimension, e.Attempts)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementExhausted
}
