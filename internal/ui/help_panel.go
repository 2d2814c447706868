// internal/ui/help_panel.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var helpLines = []string{
	"Controls",
	"",
	"RMB      add circle",
	"LMB      select",
	"Ctrl+LMB add to sel.",
	"drag     move sel.",
	"Delete   remove sel.",
	"C        clear all",
}

// HelpPanel — правая панель с подсказками по управлению.
type HelpPanel struct {
	fontFace   font.Face
	textColor  color.Color
	background color.Color
	padding    int
	lineStep   int
}

func NewHelpPanel(face font.Face, textColor, background color.Color, padding, lineStep int) *HelpPanel {
	return &HelpPanel{
		fontFace:   face,
		textColor:  textColor,
		background: background,
		padding:    padding,
		lineStep:   lineStep,
	}
}

func (p *HelpPanel) Draw(screen *ebiten.Image, area image.Rectangle) {
	vector.DrawFilledRect(screen, float32(area.Min.X), float32(area.Min.Y), float32(area.Dx()), float32(area.Dy()), p.background, false)
	drawLines(screen, p.fontFace, helpLines, area, p.padding, p.lineStep, p.textColor)
}
