package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Tick-rate bounds in generations per second. Repeated speed-key presses
// clamp here instead of wrapping.
const (
	MinTickRate = 1
	MaxTickRate = 240
)

// Color is an RGBA color as stored in the config file.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// Config holds the configuration for the game
type Config struct {
	BoardSide     int     `json:"board_side"`
	PixelSize     int     `json:"pixel_size"`
	TickRate      int     `json:"tick_rate"`
	SeedDensity   float64 `json:"seed_density"`
	WindowTitle   string  `json:"window_title"`
	CellColor     Color   `json:"cell_color"`
	BackgroundCol Color   `json:"background_color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		BoardSide:     200,
		PixelSize:     5,
		TickRate:      60,
		SeedDensity:   0.1,
		WindowTitle:   "Game of Life",
		CellColor:     Color{R: 255, G: 127, B: 0, A: 255},
		BackgroundCol: Color{R: 0, G: 0, B: 0, A: 255},
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config.Clamped(), nil
}

// Clamped returns the config with every parameter forced into its valid
// range, falling back to the default where a value makes no sense at all.
func (c Config) Clamped() Config {
	defaults := DefaultConfig()

	if c.BoardSide < 3 {
		c.BoardSide = defaults.BoardSide
	}
	if c.PixelSize < 1 {
		c.PixelSize = defaults.PixelSize
	}
	c.TickRate = ClampTickRate(c.TickRate)
	if c.SeedDensity < 0 || c.SeedDensity > 1 {
		c.SeedDensity = defaults.SeedDensity
	}
	if c.WindowTitle == "" {
		c.WindowTitle = defaults.WindowTitle
	}

	return c
}

// ClampTickRate bounds a tick rate to [MinTickRate, MaxTickRate].
func ClampTickRate(rate int) int {
	if rate < MinTickRate {
		return MinTickRate
	}
	if rate > MaxTickRate {
		return MaxTickRate
	}
	return rate
}
