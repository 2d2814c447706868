// internal/canvas/canvas.go

// Package canvas turns pointer and keyboard input into store mutations.
package canvas

import (
	"circle-canvas/internal/config"
	"circle-canvas/internal/event"
	"circle-canvas/internal/shape"
	"circle-canvas/internal/store"
	"circle-canvas/internal/utils"
)

// Mode is the interaction state.
//
//	Idle      --LeftPress-->   Selecting
//	Selecting --Move-->        Dragging
//	Dragging  --Move-->        Dragging
//	any       --LeftRelease--> Idle
type Mode int

const (
	Idle Mode = iota
	Selecting
	Dragging
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

type Options struct {
	SceneWidth  int
	SceneHeight int
	Radius      int
}

type Canvas struct {
	opts       Options
	store      *store.Store
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	view       View
	mode       Mode
	anchor     shape.Point
}

// New creates a canvas over st. dispatcher may be nil.
func New(opts Options, st *store.Store, rng *utils.PRNGService, dispatcher *event.Dispatcher) *Canvas {
	c := &Canvas{
		opts:       opts,
		store:      st,
		rng:        rng,
		dispatcher: dispatcher,
	}
	c.view = Fit(c.SceneRect(), opts.SceneWidth, opts.SceneHeight)
	return c
}

func (c *Canvas) SceneRect() shape.Rect {
	return shape.Rect{Max: shape.Point{X: float64(c.opts.SceneWidth), Y: float64(c.opts.SceneHeight)}}
}

func (c *Canvas) Store() *store.Store { return c.store }
func (c *Canvas) View() View          { return c.view }
func (c *Canvas) Mode() Mode          { return c.mode }
func (c *Canvas) Anchor() shape.Point { return c.anchor }

func (c *Canvas) setMode(m Mode) {
	if c.mode == m {
		return
	}
	c.mode = m
	if c.dispatcher != nil {
		c.dispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: m})
	}
}

// Resize refits the scene into a w×h viewport.
func (c *Canvas) Resize(w, h int) {
	c.view = Fit(c.SceneRect(), w, h)
}

// ToScene converts viewport pixels to scene coordinates.
func (c *Canvas) ToScene(x, y float64) shape.Point {
	return c.view.ToScene(x, y)
}

// RightClick adds a new circle centered on p.
func (c *Canvas) RightClick(p shape.Point) store.ID {
	color := c.rng.RandomColor(config.ColorMaxRed, config.ColorMaxGreen, config.ColorMaxBlue)
	return c.store.Add(shape.NewCircleAt(p, c.opts.Radius, color, config.HighlightColor))
}

// LeftPress selects under p. Without ctrl the old selection is dropped first,
// except shapes that overlap the first shape hit.
func (c *Canvas) LeftPress(p shape.Point, ctrl bool) {
	before := c.store.SelectedIDs()
	if !ctrl {
		c.deselectAll()
	}
	c.selectAt(p, before)
	c.anchor = p
	c.setMode(Selecting)
}

// Move drags the selection along with the pointer while the left button is held.
func (c *Canvas) Move(p shape.Point) {
	if c.mode == Idle || p == c.anchor {
		return
	}
	delta := p.Sub(c.anchor)
	c.store.TranslateSelected(delta.X, delta.Y)
	c.anchor = p
	c.setMode(Dragging)
}

func (c *Canvas) LeftRelease() {
	c.setMode(Idle)
}

// DeletePressed removes every selected shape.
func (c *Canvas) DeletePressed() []store.ID {
	return c.store.DeleteSelected()
}

// Clear drops all shapes and returns to Idle.
func (c *Canvas) Clear() int {
	c.setMode(Idle)
	return c.store.Clear()
}

func (c *Canvas) deselectAll() {
	for _, id := range c.store.SelectedIDs() {
		c.store.SetSelected(id, false)
	}
}

// selectAt selects every shape whose region holds p. For the first one hit,
// shapes from before that collide with it are selected too; this is not
// repeated for the shapes picked up that way.
func (c *Canvas) selectAt(p shape.Point, before []store.ID) {
	first := true
	for _, id := range c.store.ItemsAt(p) {
		sh, ok := c.store.Get(id)
		if !ok || !sh.Contains(sh.ToLocal(p)) {
			continue
		}
		c.store.SetSelected(id, true)
		if !first {
			continue
		}
		first = false
		for _, other := range before {
			if other == id {
				continue
			}
			if o, ok := c.store.Get(other); ok && sh.Collides(o) {
				c.store.SetSelected(other, true)
			}
		}
	}
}
