// internal/ui/layout/layout.go

// Package layout splits the window into the canvas pane and the side panes.
package layout

import "image"

// Panes are the window areas in window pixels.
type Panes struct {
	Canvas image.Rectangle
	Right  image.Rectangle
	Bottom image.Rectangle
}

// Split divides a w×h window: the top row holds the canvas and the right
// pane in a stretchX:1 ratio, the bottom pane takes 1/(stretchY+1) of the height.
func Split(w, h, stretchX, stretchY int) Panes {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	topH := h * stretchY / (stretchY + 1)
	canvasW := w * stretchX / (stretchX + 1)

	return Panes{
		Canvas: image.Rect(0, 0, canvasW, topH),
		Right:  image.Rect(canvasW, 0, w, topH),
		Bottom: image.Rect(0, topH, w, h),
	}
}

// ToPane converts a window point into pane-local coordinates.
func ToPane(pane image.Rectangle, x, y int) (float64, float64) {
	return float64(x - pane.Min.X), float64(y - pane.Min.Y)
}
