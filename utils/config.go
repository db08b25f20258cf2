package utils

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds the configuration for the visualizer
type Config struct {
	FieldWidth          int     `json:"field_width"`
	FieldHeight         int     `json:"field_height"`
	CellSize            int     `json:"cell_size"`
	WindowTitle         string  `json:"window_title"`
	WindowWidth         int     `json:"window_width"`
	WindowHeight        int     `json:"window_height"`
	RandomDensity       float64 `json:"random_density"`
	Speed               float64 `json:"speed"`
	ShowGrid            bool    `json:"show_grid"`
	AutoPlay            bool    `json:"auto_play"`
	InitialPattern      string  `json:"initial_pattern"`
	StagnationThreshold int     `json:"stagnation_threshold"`
	Debug               bool    `json:"debug"`
}

// DefaultConfig returns the geometry and behavior of the stock visualizer:
// a 60x60 field of 10px cells in an 840x600 window, grid lines on, paused.
func DefaultConfig() Config {
	return Config{
		FieldWidth:          60,
		FieldHeight:         60,
		CellSize:            10,
		WindowTitle:         "Game of Life",
		WindowWidth:         840,
		WindowHeight:        600,
		RandomDensity:       0.5,
		Speed:               0.5,
		ShowGrid:            true,
		AutoPlay:            false,
		InitialPattern:      "",
		StagnationThreshold: 5,
		Debug:               false,
	}
}

// Validate rejects geometry the window layout cannot accommodate
func (c Config) Validate() error {
	if c.FieldWidth < 1 || c.FieldHeight < 1 {
		return errors.Errorf("[Validate] field dimensions must be positive, got %dx%d", c.FieldWidth, c.FieldHeight)
	}
	if c.CellSize < 1 {
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	}
	if c.Speed < 0.1 || c.Speed > 1.0 {
		return errors.Errorf("[Validate] speed must be within [0.1, 1.0], got %v", c.Speed)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file, starting from defaults so
// a partial file only overrides the keys it names
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}
