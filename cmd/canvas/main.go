// cmd/canvas/main.go
package main

import (
	"flag"
	"os"
	"time"

	"circle-canvas/internal/canvas"
	"circle-canvas/internal/config"
	"circle-canvas/internal/event"
	"circle-canvas/internal/logging"
	"circle-canvas/internal/state"
	"circle-canvas/internal/store"
	"circle-canvas/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт окну его реальный размер: масштабированием сцены занимается canvas.View
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		logging.NewConsole(zerolog.InfoLevel).Error("config", err, map[string]interface{}{"path": *configPath})
		os.Exit(1)
	}
	logger := logging.NewConsole(logging.ParseLevel(settings.Log.Level))

	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(logger, event.All...)

	shapes := store.New(dispatcher)
	c := canvas.New(canvas.Options{
		SceneWidth:  settings.Scene.Width,
		SceneHeight: settings.Scene.Height,
		Radius:      settings.Scene.CircleRadius,
	}, shapes, utils.NewPRNGService(settings.Seed), dispatcher)

	sm := state.NewStateMachine()
	sm.SetState(state.NewCanvasState(sm, c, dispatcher, logger))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("main", "starting", map[string]interface{}{
		"scene_width":  settings.Scene.Width,
		"scene_height": settings.Scene.Height,
		"radius":       settings.Scene.CircleRadius,
	})
	if err := ebiten.RunGame(app); err != nil {
		logger.Error("main", err, nil)
		os.Exit(1)
	}
	sm.Shutdown()
}
