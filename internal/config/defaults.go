package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	rc := core.DefaultConfig()
	return SnakeConfig{
		Grid: GridConfig{
			Width:  rc.GridW,
			Height: rc.GridH,
		},
		Play: PlayConfig{
			Speed: rc.Speed,
			Input: rc.Input,
			Theme: rc.Theme,
		},
		Render: RenderConfig{
			DamageCapacity: rc.DamageCapacity,
		},
		Speeds: core.SpeedTable{
			Manual:   append([]int(nil), rc.Speeds.Manual...),
			Autoplay: append([]int(nil), rc.Speeds.Autoplay...),
		},
	}
}
