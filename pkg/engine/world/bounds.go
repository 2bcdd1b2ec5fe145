//go:build !dungeondebug

package world

// boundsChecked is enabled with the dungeondebug build tag
const boundsChecked = false
