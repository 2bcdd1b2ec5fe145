// Package ebiten provides an Ebiten-based window that displays a generated dungeon.
package ebiten

import "image/color"

// Color palette for the viewer
var (
	colorBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorFloor      = color.RGBA{40, 40, 60, 255}    // Free space
	colorWall       = color.RGBA{180, 180, 200, 255} // Light gray-blue
	colorStart      = color.RGBA{0, 220, 0, 255}     // Bright green
	colorExit       = color.RGBA{255, 100, 100, 255} // Bright red
	colorMonster    = color.RGBA{255, 80, 80, 255}
	colorTreasure   = color.RGBA{255, 200, 100, 255} // Orange
	colorImmune     = color.RGBA{40, 60, 120, 255}   // Debug background for immune cells
	colorMutable    = color.RGBA{100, 30, 30, 255}   // Debug background for mutable cells
	colorText       = color.RGBA{200, 210, 245, 255}
)

const (
	defaultTileSize = 24
	minTileSize     = 6
	maxTileSize     = 64

	// wallThickness is a fraction of the tile size
	wallThickness = 0.25

	// hudHeight is reserved below the map for the help line
	hudHeight = 20

	windowTitle = "Evolutionary Dungeon"
)
