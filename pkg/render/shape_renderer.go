// pkg/render/shape_renderer.go
package render

import (
	"circle-canvas/internal/canvas"
	"circle-canvas/internal/shape"
	"circle-canvas/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeRenderer рисует сцену и фигуры в переданную область экрана.
type ShapeRenderer struct {
	colors Colors
}

func NewShapeRenderer(colors Colors) *ShapeRenderer {
	return &ShapeRenderer{colors: colors}
}

// Draw paints the scene into dst. dst may be a sub-image; its bounds origin
// is where the view's (0, 0) lands.
func (r *ShapeRenderer) Draw(dst *ebiten.Image, st *store.Store, view canvas.View) {
	origin := dst.Bounds().Min
	ox, oy := float32(origin.X), float32(origin.Y)

	dst.Fill(r.colors.Background)
	sceneRect := view.SceneOnScreen()
	vector.DrawFilledRect(dst,
		ox+float32(sceneRect.Min.X), oy+float32(sceneRect.Min.Y),
		float32(sceneRect.Width()), float32(sceneRect.Height()),
		r.colors.Scene, false)

	// Порядок хранилища = порядок отрисовки, последние сверху
	st.Each(func(_ store.ID, sh shape.Shape) {
		switch s := sh.(type) {
		case *shape.Circle:
			r.drawCircle(dst, ox, oy, s, view)
		}
	})
}

func (r *ShapeRenderer) drawCircle(dst *ebiten.Image, ox, oy float32, c *shape.Circle, view canvas.View) {
	cx, cy := view.ToScreen(c.Center())
	radius := float32(float64(c.Radius) / 2 * view.Scale)
	x, y := ox+float32(cx), oy+float32(cy)

	vector.DrawFilledCircle(dst, x, y, radius, c.Fill(), true)

	width := r.colors.StrokeWidth * float32(view.Scale)
	if width < 1 {
		width = 1
	}
	vector.StrokeCircle(dst, x, y, radius, width, r.colors.Stroke, true)
}
