// Package pngplot renders swarm simulations to PNG images with gonum/plot.
package pngplot

import (
	"bufio"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/birromer/essaim"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of the rendered images.
const DPI = 96

// A Canvas draws a frame on a plot with fixed axis bounds.
// Drawing errors are kept until the next call to Save.
type Canvas struct {
	bounds essaim.Bounds
	plot   *plot.Plot
	err    error
}

// New returns a blank canvas showing the area delimited by b.
func New(b essaim.Bounds) *Canvas {
	c := &Canvas{bounds: b}
	c.Clear()
	return c
}

// Clear erases the current frame.
func (c *Canvas) Clear() {
	c.plot = plot.New()
	c.plot.Add(plotter.NewGrid())
	c.err = nil
}

// DrawTank draws the outline of a tank.
func (c *Canvas) DrawTank(t essaim.Tank, col color.Color, scale float64) {
	poly, err := plotter.NewPolygon(xys(t.Outline(scale)))
	if err != nil {
		c.fail(errors.Wrap(err, "pngplot: tank"))
		return
	}
	poly.Color = nil
	poly.LineStyle.Color = col
	poly.LineStyle.Width = vg.Points(1)
	c.plot.Add(poly)
}

// DrawSegment draws a line from a to b.
func (c *Canvas) DrawSegment(a, b r2.Vec, col color.Color, width float64) {
	line, err := plotter.NewLine(xys([]r2.Vec{a, b}))
	if err != nil {
		c.fail(errors.Wrap(err, "pngplot: segment"))
		return
	}
	line.LineStyle.Color = col
	line.LineStyle.Width = vg.Points(width)
	c.plot.Add(line)
}

// Pause does nothing: frames are only shown once saved.
func (c *Canvas) Pause(time.Duration) {}

// Render renders the current frame as a w×h PNG image to out.
func (c *Canvas) Render(out io.Writer, w, h vg.Length) error {
	if c.err != nil {
		return c.err
	}

	// plotters widen the axes to fit their data
	c.plot.X.Min, c.plot.X.Max = c.bounds.Xmin, c.bounds.Xmax
	c.plot.Y.Min, c.plot.Y.Max = c.bounds.Ymin, c.bounds.Ymax

	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))
	c.plot.Draw(draw.New(img))
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(out)
	return errors.Wrap(err, "pngplot: encode")
}

// Save renders the current frame to the PNG file at path.
func (c *Canvas) Save(path string, w, h vg.Length) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "pngplot")
	}
	defer checkClose(&err, f)

	bw := bufio.NewWriter(f)
	if err := c.Render(bw, w, h); err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "pngplot: flush")
}

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func xys(pts []r2.Vec) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return out
}

// checkClose checks for errors in deferred calls.
func checkClose(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
