package canvas

import (
	"testing"

	"circle-canvas/internal/shape"

	"github.com/stretchr/testify/assert"
)

var scene = shape.Rect{Max: shape.Point{X: 800, Y: 600}}

func TestFitSameAspect(t *testing.T) {
	v := Fit(scene, 400, 300)
	assert.Equal(t, 0.5, v.Scale)
	assert.Zero(t, v.OffsetX)
	assert.Zero(t, v.OffsetY)
}

func TestFitLetterboxesWideViewport(t *testing.T) {
	v := Fit(scene, 1000, 300)

	assert.Equal(t, 0.5, v.Scale)
	assert.Equal(t, 300.0, v.OffsetX)
	assert.Zero(t, v.OffsetY)

	r := v.SceneOnScreen()
	assert.Equal(t, shape.Point{X: 300, Y: 0}, r.Min)
	assert.Equal(t, shape.Point{X: 700, Y: 300}, r.Max)
}

func TestFitLetterboxesTallViewport(t *testing.T) {
	v := Fit(scene, 800, 1000)

	assert.Equal(t, 1.0, v.Scale)
	assert.Zero(t, v.OffsetX)
	assert.Equal(t, 200.0, v.OffsetY)
}

func TestFitDegenerateViewport(t *testing.T) {
	v := Fit(scene, 0, 0)
	assert.Equal(t, 1.0, v.Scale)
}

func TestRoundTrip(t *testing.T) {
	v := Fit(scene, 1000, 600)
	p := shape.Point{X: 123, Y: 456}
	x, y := v.ToScreen(p)
	assert.InDelta(t, p.X, v.ToScene(x, y).X, 1e-9)
	assert.InDelta(t, p.Y, v.ToScene(x, y).Y, 1e-9)
}
