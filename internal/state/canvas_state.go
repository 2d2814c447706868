// internal/state/canvas_state.go
package state

import (
	"image"

	"circle-canvas/internal/canvas"
	"circle-canvas/internal/config"
	"circle-canvas/internal/event"
	"circle-canvas/internal/input"
	"circle-canvas/internal/logging"
	"circle-canvas/internal/ui"
	"circle-canvas/internal/ui/layout"
	"circle-canvas/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"
)

var _ State = (*CanvasState)(nil)

// События, которые показывает нижняя панель
var statusEvents = []event.EventType{event.ShapeAdded, event.ShapeRemoved, event.ShapesMoved, event.StoreCleared}

// CanvasState — единственное рабочее состояние: холст и две панели.
type CanvasState struct {
	sm         *StateMachine
	canvas     *canvas.Canvas
	input      *input.Handler
	renderer   *render.ShapeRenderer
	status     *ui.StatusPanel
	help       *ui.HelpPanel
	dispatcher *event.Dispatcher
	logger     *logging.Logger
	panes      layout.Panes
}

func NewCanvasState(sm *StateMachine, c *canvas.Canvas, dispatcher *event.Dispatcher, logger *logging.Logger) *CanvasState {
	face := basicfont.Face7x13
	renderer := render.NewShapeRenderer(render.Colors{
		Background:  config.BackgroundColor,
		Scene:       config.SceneColor,
		Stroke:      config.StrokeColor,
		StrokeWidth: config.StrokeWidth,
	})
	status := ui.NewStatusPanel(face, config.PanelTextColor, config.PanelColor, config.PanelPadding, config.PanelLineStep)
	help := ui.NewHelpPanel(face, config.PanelTextColor, render.DarkenColor(config.PanelColor), config.PanelPadding, config.PanelLineStep)

	return &CanvasState{
		sm:         sm,
		canvas:     c,
		input:      input.NewHandler(c),
		renderer:   renderer,
		status:     status,
		help:       help,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *CanvasState) Enter() {
	s.dispatcher.SubscribeAll(s.status, statusEvents...)
	s.logger.Info("state", "canvas ready", map[string]interface{}{"shapes": s.canvas.Store().Len()})
}

func (s *CanvasState) Resize(width, height int) {
	s.panes = layout.Split(width, height, config.CanvasStretchX, config.CanvasStretchY)
	s.input.SetPane(s.panes.Canvas)
	s.logger.Debug("state", "resized", map[string]interface{}{
		"width":  width,
		"height": height,
		"scale":  s.canvas.View().Scale,
	})
}

// Update снимает состояние ввода раз в тик и отдаёт его обработчику.
func (s *CanvasState) Update(deltaTime float64) {
	x, y := ebiten.CursorPosition()
	s.input.Handle(input.Frame{
		Cursor:        image.Pt(x, y),
		RightPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		LeftPressed:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		LeftHeld:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftReleased:  inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Ctrl:          ebiten.IsKeyPressed(ebiten.KeyControl),
		DeletePressed: inpututil.IsKeyJustPressed(ebiten.KeyDelete),
		ClearPressed:  inpututil.IsKeyJustPressed(ebiten.KeyC),
	})
}

func (s *CanvasState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SplitterColor)

	if !s.panes.Canvas.Empty() {
		canvasImg := screen.SubImage(s.panes.Canvas).(*ebiten.Image)
		s.renderer.Draw(canvasImg, s.canvas.Store(), s.canvas.View())
	}
	s.help.Draw(screen, s.panes.Right.Inset(1))
	s.status.Draw(screen, s.panes.Bottom.Inset(1), s.canvas, s.input.CursorScene())
}

func (s *CanvasState) Exit() {
	// Сначала отписываем панель, чтобы очистка не трогала уже закрытый UI
	s.dispatcher.UnsubscribeAll(s.status, statusEvents...)
	n := s.canvas.Clear()
	s.logger.Info("state", "canvas closed", map[string]interface{}{"shapes": n})
}
