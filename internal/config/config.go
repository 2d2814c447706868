// internal/config/config.go
package config

import "image/color"

const (
	SceneWidth   = 800
	SceneHeight  = 600
	CircleRadius = 100

	WindowWidth  = 1000
	WindowHeight = 800
	WindowTitle  = "Добавление и перемещение кругов"

	// Доли окна под холст, как у сплиттеров: 4:1 по горизонтали, 5:1 по вертикали
	CanvasStretchX = 4
	CanvasStretchY = 5

	StrokeWidth    = 2.0
	PanelPadding   = 8
	PanelLineStep  = 16
	MaxDeltaTime   = 0.06
	ColorMaxRed    = 240
	ColorMaxGreen  = 256
	ColorMaxBlue   = 256
	DefaultLogMode = "info"
)

var (
	BackgroundColor = color.RGBA{60, 60, 70, 255} // поля вокруг сцены (letterbox)
	SceneColor      = color.RGBA{255, 255, 255, 255}
	HighlightColor  = color.RGBA{255, 0, 0, 255}
	StrokeColor     = color.RGBA{255, 255, 255, 255}
	PanelColor      = color.RGBA{35, 35, 45, 255}
	PanelTextColor  = color.RGBA{240, 240, 240, 255}
	SplitterColor   = color.RGBA{90, 90, 100, 255}
)
