// internal/canvas/view.go
package canvas

import (
	"math"

	"circle-canvas/internal/shape"
)

// View maps the fixed scene rectangle onto a viewport of pixels,
// keeping the aspect ratio and centering the scene (letterboxing).
type View struct {
	Scene   shape.Rect
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit returns the view that shows all of scene inside a w×h viewport.
func Fit(scene shape.Rect, w, h int) View {
	v := View{Scene: scene, Scale: 1}
	sw, sh := scene.Width(), scene.Height()
	if w <= 0 || h <= 0 || sw <= 0 || sh <= 0 {
		return v
	}
	v.Scale = math.Min(float64(w)/sw, float64(h)/sh)
	v.OffsetX = (float64(w)-sw*v.Scale)/2 - scene.Min.X*v.Scale
	v.OffsetY = (float64(h)-sh*v.Scale)/2 - scene.Min.Y*v.Scale
	return v
}

func (v View) ToScene(x, y float64) shape.Point {
	return shape.Point{
		X: (x - v.OffsetX) / v.Scale,
		Y: (y - v.OffsetY) / v.Scale,
	}
}

func (v View) ToScreen(p shape.Point) (float64, float64) {
	return p.X*v.Scale + v.OffsetX, p.Y*v.Scale + v.OffsetY
}

// SceneOnScreen is the scene rectangle in viewport pixels.
func (v View) SceneOnScreen() shape.Rect {
	x0, y0 := v.ToScreen(v.Scene.Min)
	x1, y1 := v.ToScreen(v.Scene.Max)
	return shape.Rect{Min: shape.Point{X: x0, Y: y0}, Max: shape.Point{X: x1, Y: y1}}
}
