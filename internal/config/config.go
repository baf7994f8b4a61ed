package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file, relative to the process working directory.
const DefaultPath = "config/balls.yaml"

// Config holds the window, physics and overlay settings read at startup.
type Config struct {
	Window  Window  `yaml:"window"`
	Physics Physics `yaml:"physics"`
	Balls   Balls   `yaml:"balls"`
	Debug   Debug   `yaml:"debug"`
}

// Window describes the render surface.
type Window struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// Physics holds the tick cadence and gravity.
type Physics struct {
	Tick    time.Duration `yaml:"tick"`
	Gravity float64       `yaml:"gravity"`
}

// Balls controls how the scene is populated.
type Balls struct {
	Count    int     `yaml:"count"`
	Diameter int     `yaml:"diameter"`
	Sprite   string  `yaml:"sprite,omitempty"` // empty draws a shaded ball
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Seed     int64   `yaml:"seed"` // 0 picks a time-based seed
	Spin     bool    `yaml:"spin"`
}

// Debug toggles the overlays.
type Debug struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
	ShowLog   bool `yaml:"show_log"`
}

// Default returns the settings of the classic demo: three spinning balls in a 640x480
// window, 50ms ticks and 0.2 px/tick² gravity.
func Default() Config {
	return Config{
		Window: Window{
			Width:     640,
			Height:    480,
			Title:     "balls",
			TargetFPS: 60,
		},
		Physics: Physics{
			Tick:    50 * time.Millisecond,
			Gravity: 0.2,
		},
		Balls: Balls{
			Count:    3,
			Diameter: 40,
			MinSpeed: 1,
			MaxSpeed: 6,
			Spin:     true,
		},
	}
}

// Load reads the config at path over Default(). A missing file is not an error. A file that
// cannot be parsed or fails Validate returns Default() and the error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path as YAML, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the scene cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps %d must not be negative", c.Window.TargetFPS))
	}
	if c.Physics.Tick <= 0 {
		errs = append(errs, fmt.Errorf("tick %v must be positive", c.Physics.Tick))
	}
	if c.Balls.Count < 0 {
		errs = append(errs, fmt.Errorf("ball count %d must not be negative", c.Balls.Count))
	}
	if c.Balls.Diameter <= 0 {
		errs = append(errs, fmt.Errorf("ball diameter %d must be positive", c.Balls.Diameter))
	}
	if c.Balls.MinSpeed > c.Balls.MaxSpeed {
		errs = append(errs, fmt.Errorf("min_speed %v exceeds max_speed %v", c.Balls.MinSpeed, c.Balls.MaxSpeed))
	}
	return errors.Join(errs...)
}
