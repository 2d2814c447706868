package input

import (
	"image"
	"testing"

	"circle-canvas/internal/canvas"
	"circle-canvas/internal/shape"
	"circle-canvas/internal/store"
	"circle-canvas/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Панель смещена на (100, 50), масштаб 1: сцена = окно - (100, 50)
var pane = image.Rect(100, 50, 900, 650)

func newHandler(t *testing.T) (*Handler, *canvas.Canvas) {
	t.Helper()
	c := canvas.New(canvas.Options{SceneWidth: 800, SceneHeight: 600, Radius: 100}, store.New(nil), utils.NewPRNGService(1), nil)
	h := NewHandler(c)
	h.SetPane(pane)
	require.Equal(t, 1.0, c.View().Scale)
	return h, c
}

func center(t *testing.T, c *canvas.Canvas, id store.ID) shape.Point {
	t.Helper()
	sh, ok := c.Store().Get(id)
	require.True(t, ok)
	return sh.(*shape.Circle).Center()
}

func TestRightPressInsidePaneAddsCircle(t *testing.T) {
	h, c := newHandler(t)

	h.Handle(Frame{Cursor: image.Pt(300, 200), RightPressed: true})

	require.Equal(t, 1, c.Store().Len())
	id, _, _ := c.Store().At(0)
	assert.Equal(t, shape.Point{X: 200, Y: 150}, center(t, c, id))
	assert.Equal(t, shape.Point{X: 200, Y: 150}, h.CursorScene())
}

func TestPressOutsidePaneIsIgnored(t *testing.T) {
	h, c := newHandler(t)
	// круг в сцене (20, 50) частично вылезает за левый край панели
	h.Handle(Frame{Cursor: image.Pt(120, 100), RightPressed: true})
	require.Equal(t, 1, c.Store().Len())

	// (90, 100) — левее панели, в сцене это (-10, 50), внутри круга
	h.Handle(Frame{Cursor: image.Pt(90, 100), RightPressed: true, LeftPressed: true, LeftHeld: true})

	assert.Equal(t, 1, c.Store().Len())
	assert.Empty(t, c.Store().SelectedIDs())
	assert.Equal(t, canvas.Idle, c.Mode())
}

func TestDragLeavingPaneKeepsMoving(t *testing.T) {
	h, c := newHandler(t)
	h.Handle(Frame{Cursor: image.Pt(300, 200), RightPressed: true})
	id, _, _ := c.Store().At(0)

	h.Handle(Frame{Cursor: image.Pt(300, 200), LeftPressed: true, LeftHeld: true})
	require.Equal(t, []store.ID{id}, c.Store().SelectedIDs())

	h.Handle(Frame{Cursor: image.Pt(950, 700), LeftHeld: true})
	assert.Equal(t, canvas.Dragging, c.Mode())
	assert.Equal(t, shape.Point{X: 850, Y: 650}, center(t, c, id))

	h.Handle(Frame{Cursor: image.Pt(950, 700), LeftReleased: true})
	assert.Equal(t, canvas.Idle, c.Mode())
}

func TestPressAndReleaseInOneTickEndsIdle(t *testing.T) {
	h, c := newHandler(t)
	h.Handle(Frame{Cursor: image.Pt(300, 200), RightPressed: true})

	h.Handle(Frame{Cursor: image.Pt(300, 200), LeftPressed: true, LeftReleased: true})

	assert.Equal(t, canvas.Idle, c.Mode())
	assert.Len(t, c.Store().SelectedIDs(), 1)
}

func TestRightThenLeftInOneTickSelectsNewCircle(t *testing.T) {
	h, c := newHandler(t)

	h.Handle(Frame{Cursor: image.Pt(300, 200), RightPressed: true, LeftPressed: true, LeftHeld: true})

	id, _, ok := c.Store().At(0)
	require.True(t, ok)
	assert.Equal(t, []store.ID{id}, c.Store().SelectedIDs())
	assert.Equal(t, canvas.Selecting, c.Mode())
}

func TestHeldWithoutCursorChangeDoesNotMove(t *testing.T) {
	h, c := newHandler(t)
	h.Handle(Frame{Cursor: image.Pt(300, 200), RightPressed: true})
	id, _, _ := c.Store().At(0)
	h.Handle(Frame{Cursor: image.Pt(300, 200), LeftPressed: true, LeftHeld: true})

	h.Handle(Frame{Cursor: image.Pt(300, 200), LeftHeld: true})

	assert.Equal(t, canvas.Selecting, c.Mode())
	assert.Equal(t, shape.Point{X: 200, Y: 150}, center(t, c, id))
}

func TestCtrlPressIsAdditive(t *testing.T) {
	h, c := newHandler(t)
	h.Handle(Frame{Cursor: image.Pt(200, 150), RightPressed: true})
	h.Handle(Frame{Cursor: image.Pt(700, 500), RightPressed: true})

	h.Handle(Frame{Cursor: image.Pt(200, 150), LeftPressed: true, LeftReleased: true})
	h.Handle(Frame{Cursor: image.Pt(700, 500), LeftPressed: true, LeftReleased: true, Ctrl: true})
	assert.Len(t, c.Store().SelectedIDs(), 2)

	h.Handle(Frame{Cursor: image.Pt(700, 500), LeftPressed: true, LeftReleased: true})
	assert.Len(t, c.Store().SelectedIDs(), 1)
}

func TestKeys(t *testing.T) {
	h, c := newHandler(t)
	h.Handle(Frame{Cursor: image.Pt(200, 150), RightPressed: true})
	h.Handle(Frame{Cursor: image.Pt(700, 500), RightPressed: true})
	h.Handle(Frame{Cursor: image.Pt(200, 150), LeftPressed: true, LeftReleased: true})

	h.Handle(Frame{Cursor: image.Pt(200, 150), DeletePressed: true})
	assert.Equal(t, 1, c.Store().Len())

	h.Handle(Frame{Cursor: image.Pt(200, 150), ClearPressed: true})
	assert.Zero(t, c.Store().Len())
}
