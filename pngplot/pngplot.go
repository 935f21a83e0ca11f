package pngplot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/birromer/essaim"
	"github.com/cheggaaa/pb"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// Config holds the parameters of the PNG driver.
type Config struct {
	Output string        // directory receiving the frames
	Steps  int           // total number of frames
	Step   func()        // go to next step
	Bounds essaim.Bounds // area shown on every frame

	// size of the images
	Width  vg.Length
	Height vg.Length

	// Progress receives the progress bar. Nil means standard output.
	Progress io.Writer
}

// FrameName returns the file name of frame k.
func FrameName(k int) string {
	return fmt.Sprintf("frame-%05d.png", k)
}

// Run renders conf.Steps frames of a simulation to PNG files.
func Run(s *essaim.Simulation, conf *Config) error {
	if err := os.MkdirAll(conf.Output, 0755); err != nil {
		return errors.Wrap(err, "pngplot")
	}

	bar := pb.New(conf.Steps)
	if conf.Progress != nil {
		bar.Output = conf.Progress
	}
	bar.Start()
	defer bar.Finish()

	c := New(conf.Bounds)
	for k := 0; k < conf.Steps; k++ {
		essaim.Draw(c, s.State)
		if err := c.Save(filepath.Join(conf.Output, FrameName(k)), conf.Width, conf.Height); err != nil {
			return errors.Wrapf(err, "frame %d", k)
		}
		conf.Step()
		bar.Increment()
	}
	return nil
}
