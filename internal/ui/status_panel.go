// internal/ui/status_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"circle-canvas/internal/canvas"
	"circle-canvas/internal/event"
	"circle-canvas/internal/shape"
	"circle-canvas/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StatusPanel — нижняя панель: счётчики, режим и последнее действие.
type StatusPanel struct {
	fontFace   font.Face
	textColor  color.Color
	background color.Color
	padding    int
	lineStep   int
	lastAction string
}

func NewStatusPanel(face font.Face, textColor, background color.Color, padding, lineStep int) *StatusPanel {
	return &StatusPanel{
		fontFace:   face,
		textColor:  textColor,
		background: background,
		padding:    padding,
		lineStep:   lineStep,
		lastAction: "ready",
	}
}

// OnEvent keeps a short description of the latest store change.
func (p *StatusPanel) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShapeAdded:
		p.lastAction = fmt.Sprintf("added #%v", e.Data)
	case event.ShapeRemoved:
		p.lastAction = fmt.Sprintf("removed #%v", e.Data)
	case event.StoreCleared:
		p.lastAction = fmt.Sprintf("cleared %v", e.Data)
	case event.ShapesMoved:
		if m, ok := e.Data.(store.Move); ok {
			p.lastAction = fmt.Sprintf("moved %d by (%.0f, %.0f)", len(m.IDs), m.DX, m.DY)
		}
	}
}

func (p *StatusPanel) Draw(screen *ebiten.Image, area image.Rectangle, c *canvas.Canvas, cursor shape.Point) {
	vector.DrawFilledRect(screen, float32(area.Min.X), float32(area.Min.Y), float32(area.Dx()), float32(area.Dy()), p.background, false)

	lines := []string{
		fmt.Sprintf("circles: %d   selected: %d   mode: %s", c.Store().Len(), len(c.Store().SelectedIDs()), c.Mode()),
		fmt.Sprintf("cursor: (%.0f, %.0f)", cursor.X, cursor.Y),
		p.lastAction,
	}
	drawLines(screen, p.fontFace, lines, area, p.padding, p.lineStep, p.textColor)
}

func drawLines(screen *ebiten.Image, face font.Face, lines []string, area image.Rectangle, padding, step int, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	y := area.Min.Y + padding + ascent
	for _, line := range lines {
		if y > area.Max.Y {
			break
		}
		text.Draw(screen, line, face, area.Min.X+padding, y, clr)
		y += step
	}
}
