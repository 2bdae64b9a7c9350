// Package config loads the runtime settings. Cube size is not here: it is
// fixed at build time by the cube4 tag.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/voxelcube/internal/show"
)

// Preview modes.
const (
	PreviewNone   = "none"
	PreviewScreen = "screen" // periph console LED strip
	PreviewASCII  = "ascii"  // layer tiles printed to the log
)

type Preview struct {
	Mode       string  `yaml:"mode"`
	Hue        float64 `yaml:"hue"` // degrees
	Serpentine bool    `yaml:"serpentine"`
}

type Config struct {
	TickMs     int    `yaml:"tick_ms"`
	Seed       int64  `yaml:"seed"` // 0 seeds from the clock
	LogLevel   string `yaml:"log_level"`
	Brightness uint8  `yaml:"brightness"`

	Preview Preview      `yaml:"preview"`
	Program show.Program `yaml:"program"`
}

// Default returns the settings used when no file is given: every effect once,
// looping.
func Default() *Config {
	return &Config{
		TickMs:     10,
		LogLevel:   "info",
		Brightness: 10,
		Preview:    Preview{Mode: PreviewASCII, Hue: 200, Serpentine: true},
		Program: show.Program{
			Loop: true,
			Clips: []show.Clip{
				{Name: "rain", Effect: "rain", DurationS: 20},
				{Name: "toggle", Effect: "toggle", DurationS: 10},
				{Name: "bounce", Effect: "bounce", DurationS: 20},
				{Name: "sticky", Effect: "sticky-bounce", DurationS: 20},
				{Name: "blink", Effect: "blink", DurationS: 15},
			},
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; a program in the file replaces the default one.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Validate checks the values Load cannot enforce through types.
func (c *Config) Validate() error {
	if c.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMs)
	}
	if c.Brightness > 10 {
		return fmt.Errorf("brightness must be 0..10, got %d", c.Brightness)
	}
	switch c.Preview.Mode {
	case PreviewNone, PreviewScreen, PreviewASCII:
	default:
		return fmt.Errorf("unknown preview mode %q", c.Preview.Mode)
	}
	return nil
}
