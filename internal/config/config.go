// Package config loads the runtime configuration for the script engine.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the engine's runtime parameters.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig controls the tick loop and look behavior.
type EngineConfig struct {
	// TickRate is the simulation frequency in ticks per second.
	TickRate float64 `yaml:"tick_rate"`
	// Workers bounds the goroutines used for the parallel integrate phase.
	Workers int `yaml:"workers"`
	// LookPadding is the dead-zone distance for look operations: targets
	// closer than this leave the orientation untouched.
	LookPadding float64 `yaml:"look_padding"`
	// MaxStep clamps the wall-clock frame delta, in seconds.
	MaxStep float64 `yaml:"max_step"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			TickRate:    30,
			Workers:     4,
			LookPadding: 0.01,
			MaxStep:     0.25,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML config from r on top of the defaults.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads a YAML config file on top of the defaults.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the configuration for out-of-contract values.
func (c Config) Validate() error {
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("engine.tick_rate must be positive, got %v", c.Engine.TickRate)
	}
	if c.Engine.Workers <= 0 {
		return fmt.Errorf("engine.workers must be positive, got %d", c.Engine.Workers)
	}
	if c.Engine.LookPadding < 0 {
		return fmt.Errorf("engine.look_padding must not be negative, got %v", c.Engine.LookPadding)
	}
	if c.Engine.MaxStep <= 0 {
		return fmt.Errorf("engine.max_step must be positive, got %v", c.Engine.MaxStep)
	}
	return nil
}
