// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidSettings is returned by Validate for sizes that are not positive.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the values that may be overridden from a TOML file.
// Keys absent from the file keep their defaults.
type Settings struct {
	Scene  SceneSettings  `toml:"scene"`
	Window WindowSettings `toml:"window"`
	Log    LogSettings    `toml:"log"`
	Seed   int64          `toml:"seed"`
}

type SceneSettings struct {
	Width        int `toml:"width"`
	Height       int `toml:"height"`
	CircleRadius int `toml:"circle_radius"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type LogSettings struct {
	Level string `toml:"level"`
}

// Default returns the hardcoded settings used when no file is given.
func Default() Settings {
	return Settings{
		Scene: SceneSettings{
			Width:        SceneWidth,
			Height:       SceneHeight,
			CircleRadius: CircleRadius,
		},
		Window: WindowSettings{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Log: LogSettings{Level: DefaultLogMode},
	}
}

// Load reads settings from path on top of Default. An empty path yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := Parse(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// Parse decodes TOML data into s, leaving absent keys untouched, and validates the result.
func Parse(data []byte, s *Settings) error {
	if err := toml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return s.Validate()
}

func (s Settings) Validate() error {
	switch {
	case s.Scene.Width <= 0 || s.Scene.Height <= 0:
		return fmt.Errorf("%w: scene size %dx%d", ErrInvalidSettings, s.Scene.Width, s.Scene.Height)
	case s.Scene.CircleRadius <= 0:
		return fmt.Errorf("%w: circle radius %d", ErrInvalidSettings, s.Scene.CircleRadius)
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Window.Width, s.Window.Height)
	}
	return nil
}
