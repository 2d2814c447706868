// internal/shape/shape.go

// Package shape holds the drawable figures of the canvas.
package shape

import "image/color"

// Shape is the closed set of figures the canvas knows about.
// Only types in this package can implement it.
type Shape interface {
	Bounds() Rect
	// Contains reports whether p, given in local coordinates, lies inside the figure.
	Contains(p Point) bool
	// ToLocal converts a scene point into the figure's local coordinates.
	ToLocal(scene Point) Point
	Collides(other Shape) bool
	Translate(dx, dy float64)
	SetSelected(selected bool)
	Selected() bool
	// Fill is the color to draw with right now.
	Fill() color.RGBA

	sealed()
}
