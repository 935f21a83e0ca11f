package main

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/birromer/essaim"
	"github.com/pkg/errors"
)

// Config holds the various parameters required for running a simulation.
type Config struct {
	// Output is either a directory receiving one PNG image per frame,
	// or the empty string for an interactive OpenGL simulation.
	Output string

	SwarmSize int     // number of tanks
	Seed      uint64  // seed of the initial state
	Steps     int     // number of frames (png only)
	Dt        float64 // duration of time steps
	Epsilon   float64 // smallest repulsion distance, 0 disables the guard

	// Bounds of the viewport
	Xmin float64
	Xmax float64
	Ymin float64
	Ymax float64

	Pause  float64 // unit: s, delay between frames (opengl only)
	Width  float64 // unit: inch, width of images (png only)
	Height float64 // unit: inch, height of images (png only)
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Output:    "",
	SwarmSize: essaim.DefaultSwarmSize,
	Seed:      essaim.DefaultSeed,
	Steps:     100,
	Dt:        essaim.DefaultDt,
	Epsilon:   essaim.DefaultEpsilon,
	Xmin:      essaim.DefaultBounds.Xmin,
	Xmax:      essaim.DefaultBounds.Xmax,
	Ymin:      essaim.DefaultBounds.Ymin,
	Ymax:      essaim.DefaultBounds.Ymax,
	Pause:     essaim.DefaultPause.Seconds(),
	Width:     6,
	Height:    6,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := *DefaultConf
	md, err := toml.DecodeFile(path, &conf)
	if err != nil {
		return nil, errors.Wrap(err, "config")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("config: unknown key %q", keys[0].String())
	}
	return &conf, conf.Validate()
}

// Validate checks that the parameters can run a simulation.
func (c *Config) Validate() error {
	switch {
	case c.SwarmSize < 1:
		return errors.Errorf("config: swarm size must be positive, got %d", c.SwarmSize)
	case c.Dt <= 0:
		return errors.Errorf("config: time step must be positive, got %v", c.Dt)
	case c.Epsilon < 0:
		return errors.Errorf("config: epsilon must not be negative, got %v", c.Epsilon)
	case c.Steps < 0:
		return errors.Errorf("config: number of steps must not be negative, got %d", c.Steps)
	case c.Xmin >= c.Xmax || c.Ymin >= c.Ymax:
		return errors.New("config: empty viewport")
	case c.Output != "" && (c.Width <= 0 || c.Height <= 0):
		return errors.New("config: image size must be positive")
	}
	return nil
}

// Bounds returns the bounds of the viewport.
func (c *Config) Bounds() essaim.Bounds {
	return essaim.Bounds{Xmin: c.Xmin, Xmax: c.Xmax, Ymin: c.Ymin, Ymax: c.Ymax}
}

// PauseDuration returns the delay between frames.
func (c *Config) PauseDuration() time.Duration {
	return time.Duration(c.Pause * float64(time.Second))
}
