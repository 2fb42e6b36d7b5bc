// Package config provides YAML-based configuration loading for the snake
// game and its resolution into a core.RuntimeConfig.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Grid size limits in cells.
const (
	MinGridSize = 5
	MaxGridSize = 200
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid   GridConfig      `yaml:"grid"`
	Play   PlayConfig      `yaml:"play"`
	Render RenderConfig    `yaml:"render"`
	Speeds core.SpeedTable `yaml:"speeds"`
}

// GridConfig defines the jungle dimensions.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayConfig defines how a run is played.
type PlayConfig struct {
	Speed    int            `yaml:"speed"`
	Autoplay bool           `yaml:"autoplay"`
	Input    core.InputMode `yaml:"input"`
	Theme    string         `yaml:"theme"`
	Map      string         `yaml:"map"`
}

// RenderConfig defines renderer parameters.
type RenderConfig struct {
	DamageCapacity int `yaml:"damage_capacity"`
}

// Validate reports every out-of-range value. Theme and map names are
// checked against their registries by the caller.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width < MinGridSize || c.Grid.Width > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.width %d outside %d..%d", c.Grid.Width, MinGridSize, MaxGridSize))
	}
	if c.Grid.Height < MinGridSize || c.Grid.Height > MaxGridSize {
		errs = append(errs, fmt.Errorf("grid.height %d outside %d..%d", c.Grid.Height, MinGridSize, MaxGridSize))
	}
	if c.Play.Speed < core.MinSpeed || c.Play.Speed > core.MaxSpeed {
		errs = append(errs, fmt.Errorf("play.speed %d outside %d..%d", c.Play.Speed, core.MinSpeed, core.MaxSpeed))
	}
	switch c.Play.Input {
	case core.InputAbsolute, core.InputRelative:
	default:
		errs = append(errs, fmt.Errorf("play.input %q is not %q or %q", c.Play.Input, core.InputAbsolute, core.InputRelative))
	}
	if c.Render.DamageCapacity < 1 {
		errs = append(errs, fmt.Errorf("render.damage_capacity %d must be positive", c.Render.DamageCapacity))
	}
	errs = append(errs, validateTable("speeds.manual", c.Speeds.Manual, true)...)
	errs = append(errs, validateTable("speeds.autoplay", c.Speeds.Autoplay, false)...)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func validateTable(name string, table []int, required bool) []error {
	if len(table) == 0 && !required {
		return nil
	}
	if len(table) != core.MaxSpeed {
		return []error{fmt.Errorf("%s has %d entries, expected %d", name, len(table), core.MaxSpeed)}
	}
	var errs []error
	for i, ms := range table {
		if ms <= 0 {
			errs = append(errs, fmt.Errorf("%s[%d] = %d must be positive", name, i, ms))
		}
	}
	return errs
}

// ToRuntime resolves the config into the values the game runs with.
// Screen size and seed are left to the platform.
func (c SnakeConfig) ToRuntime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.GridW = c.Grid.Width
	rc.GridH = c.Grid.Height
	rc.Speed = c.Play.Speed
	rc.Speeds = c.Speeds
	rc.Autoplay = c.Play.Autoplay
	rc.Input = c.Play.Input
	rc.Theme = c.Play.Theme
	rc.Map = c.Play.Map
	rc.DamageCapacity = c.Render.DamageCapacity
	return rc
}
