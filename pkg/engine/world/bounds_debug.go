//go:build dungeondebug

package world

const boundsChecked = true
