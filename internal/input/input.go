// internal/input/input.go

// Package input applies one tick of polled pointer and keyboard state to the canvas.
package input

import (
	"image"

	"circle-canvas/internal/canvas"
	"circle-canvas/internal/shape"
	"circle-canvas/internal/ui/layout"
)

// Frame — снимок ввода за один тик.
type Frame struct {
	Cursor        image.Point // в пикселях окна
	RightPressed  bool        // только что нажата
	LeftPressed   bool        // только что нажата
	LeftHeld      bool
	LeftReleased  bool // только что отпущена
	Ctrl          bool
	DeletePressed bool
	ClearPressed  bool
}

// Handler feeds frames to a canvas shown in one pane of the window.
type Handler struct {
	canvas      *canvas.Canvas
	pane        image.Rectangle
	lastCursor  image.Point
	cursorScene shape.Point
}

func NewHandler(c *canvas.Canvas) *Handler {
	return &Handler{canvas: c}
}

// SetPane sets where the canvas sits in the window and refits its view.
func (h *Handler) SetPane(pane image.Rectangle) {
	h.pane = pane
	h.canvas.Resize(pane.Dx(), pane.Dy())
}

func (h *Handler) Pane() image.Rectangle    { return h.pane }
func (h *Handler) CursorScene() shape.Point { return h.cursorScene }

// Handle applies in in a fixed order: right press, left press, move,
// left release, keys. Presses count only inside the pane; a drag that
// started inside keeps following the cursor outside it.
func (h *Handler) Handle(in Frame) {
	inPane := in.Cursor.In(h.pane)
	h.cursorScene = h.canvas.ToScene(layout.ToPane(h.pane, in.Cursor.X, in.Cursor.Y))

	if inPane && in.RightPressed {
		h.canvas.RightClick(h.cursorScene)
	}

	if inPane && in.LeftPressed {
		h.canvas.LeftPress(h.cursorScene, in.Ctrl)
	} else if in.LeftHeld && in.Cursor != h.lastCursor {
		h.canvas.Move(h.cursorScene)
	}

	if in.LeftReleased {
		h.canvas.LeftRelease()
	}

	if in.DeletePressed {
		h.canvas.DeletePressed()
	}
	if in.ClearPressed {
		h.canvas.Clear()
	}

	h.lastCursor = in.Cursor
}
