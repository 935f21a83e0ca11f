// Command essaim runs a swarm of tanks converging into a ring formation.
//
// Usage
//
// The essaim command takes one optional argument:
//  essaim [config_file]
// It is the path to a TOML config file.
// If no config file is specified, an interactive simulation
// with default parameters will run in an OpenGL window.
//
// Config file
//
// Keys are the field names of Config. An empty config file is valid
// and leaves every parameter to its default value.
//
// When the Output key is set, frames are rendered headlessly
// to PNG images in that directory instead.
//
// Interactive mode
//
// In interactive mode, the simulation can be paused/resumed with space.
// While in pause, pressing right arrow will perform a single step.
// N draws a new swarm. Pressing Esc or closing the window will quit.
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/birromer/essaim"
	"github.com/birromer/essaim/opengl"
	"github.com/birromer/essaim/pngplot"
	"github.com/ttacon/chalk"
	"gonum.org/v1/plot/vg"
)

const usage = `Usage: essaim [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive simulation
with default parameters will run in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()
}

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	// setup simulation
	sim := setup(conf)
	step := func() { sim.Step() }

	// run interactively or not depending on config
	if conf.Output == "" {
		err = opengl.Run(sim, &opengl.Config{
			Step:   step,
			Reset:  sim.Reset,
			Pause:  conf.PauseDuration(),
			Bounds: conf.Bounds(),
		})
	} else {
		err = pngplot.Run(sim, &pngplot.Config{
			Output: conf.Output,
			Steps:  conf.Steps,
			Step:   step,
			Bounds: conf.Bounds(),
			Width:  vg.Length(conf.Width) * vg.Inch,
			Height: vg.Length(conf.Height) * vg.Inch,
		})
	}
	if err != nil {
		Fatal(err)
	}

	if sim.Singularities > 0 {
		log.Printf("%s%d singular repulsions over %d frames%s", chalk.Yellow, sim.Singularities, sim.Frame, chalk.Reset)
	}
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%sError: %s%s\n", chalk.Red, err, chalk.Reset)
	os.Exit(1)
}

// setup initializes the simulation.
func setup(conf *Config) *essaim.Simulation {
	s := essaim.New(conf.SwarmSize, conf.Seed)
	s.Dt = conf.Dt
	s.Epsilon = conf.Epsilon
	s.Singular = warnSingular(s)
	log.Printf("%sswarm of %d tanks, seed %d, dt %v%s", chalk.Green, conf.SwarmSize, conf.Seed, conf.Dt, chalk.Reset)
	return s
}

// warnSingular returns a hook logging agents that come too close to each other.
func warnSingular(s *essaim.Simulation) func(i, j int, d float64) {
	return func(i, j int, d float64) {
		log.Printf("%sframe %d: tanks %d and %d are %.3g apart, repulsion is singular%s", chalk.Yellow, s.Frame, i, j, d, chalk.Reset)
	}
}
