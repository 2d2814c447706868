// internal/shape/circle.go
package shape

import (
	"image/color"
	"math"
)

// Circle is an ellipse inscribed in a square box of side Radius whose
// top-left corner is Pos. The drawn circle therefore has radius Radius/2.
type Circle struct {
	Pos       Point
	Radius    int
	Color     color.RGBA
	Highlight color.RGBA
	selected  bool
}

var _ Shape = (*Circle)(nil)

func NewCircle(pos Point, radius int, c, highlight color.RGBA) *Circle {
	return &Circle{
		Pos:       pos,
		Radius:    radius,
		Color:     c,
		Highlight: highlight,
	}
}

// NewCircleAt creates a circle whose visual center is at p.
func NewCircleAt(p Point, radius int, c, highlight color.RGBA) *Circle {
	half := float64(radius) / 2
	return NewCircle(Point{p.X - half, p.Y - half}, radius, c, highlight)
}

func (c *Circle) sealed() {}

func (c *Circle) Bounds() Rect {
	size := float64(c.Radius)
	return Rect{Min: c.Pos, Max: Point{c.Pos.X + size, c.Pos.Y + size}}
}

// Center returns the visual center in scene coordinates.
func (c *Circle) Center() Point {
	return c.Bounds().Center()
}

func (c *Circle) ToLocal(scene Point) Point {
	return scene.Sub(c.Pos)
}

func (c *Circle) Contains(p Point) bool {
	half := float64(c.Radius) / 2
	if half <= 0 {
		return false
	}
	dx := (p.X - half) / half
	dy := (p.Y - half) / half
	return dx*dx+dy*dy <= 1
}

// Collides reports whether the two regions overlap; touching counts.
func (c *Circle) Collides(other Shape) bool {
	switch o := other.(type) {
	case *Circle:
		a, b := c.Center(), o.Center()
		reach := float64(c.Radius)/2 + float64(o.Radius)/2
		return math.Hypot(a.X-b.X, a.Y-b.Y) <= reach
	default:
		return false
	}
}

func (c *Circle) Translate(dx, dy float64) {
	c.Pos.X += dx
	c.Pos.Y += dy
}

func (c *Circle) SetSelected(selected bool) {
	c.selected = selected
}

func (c *Circle) Selected() bool {
	return c.selected
}

func (c *Circle) Fill() color.RGBA {
	if c.selected {
		return c.Highlight
	}
	return c.Color
}
