package essaim

import (
	"image/color"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Default display parameters.
const (
	DefaultTankScale = 0.25
	DefaultLinkWidth = 1.0
	DefaultPause     = 10 * time.Millisecond
)

// Colors used by Draw.
var (
	TankColor = color.RGBA{R: 0xff, A: 0xff}
	LinkColor = color.RGBA{G: 0x80, A: 0xff}
)

// Bounds delimit the area of simulation space shown on a canvas.
type Bounds struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// DefaultBounds are the bounds of the default viewport.
var DefaultBounds = Bounds{Xmin: -15, Xmax: 15, Ymin: -15, Ymax: 15}

// A Canvas is a 2D drawing surface with fixed bounds.
type Canvas interface {
	// Clear erases everything drawn so far.
	Clear()

	// DrawTank draws the glyph of a tank at its position and heading.
	DrawTank(t Tank, c color.Color, scale float64)

	// DrawSegment draws a line from a to b.
	DrawSegment(a, b r2.Vec, c color.Color, width float64)

	// Pause gives the canvas the time to refresh.
	Pause(d time.Duration)
}

// tankGlyph is the outline of a tank of scale 1 heading along x:
// the left track, the body, the right track and the gun.
var tankGlyph = []r2.Vec{
	{X: 1, Y: -2}, {X: -1, Y: -2}, {X: 0, Y: -2}, {X: 0, Y: -1}, {X: -1, Y: -1},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: -1, Y: 2}, {X: 1, Y: 2},
	{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 3, Y: 0.5}, {X: 3, Y: -0.5}, {X: 0, Y: -1},
}

// Outline returns the vertices of the tank glyph, scaled, rotated by the
// heading of t and centered on its position.
func (t Tank) Outline(scale float64) []r2.Vec {
	sin, cos := math.Sincos(t.Dir)
	out := make([]r2.Vec, len(tankGlyph))
	for i, p := range tankGlyph {
		p = r2.Scale(scale, p)
		out[i] = r2.Add(t.Pos, r2.Vec{X: cos*p.X - sin*p.Y, Y: sin*p.X + cos*p.Y})
	}
	return out
}

// Draw clears c and draws every agent of s along with the link to its
// ring neighbor.
func Draw(c Canvas, s *Swarm) {
	c.Clear()
	for i := 0; i < s.Len(); i++ {
		t := s.Tank(i)
		c.DrawTank(t, TankColor, DefaultTankScale)
		c.DrawSegment(t.Pos, s.Tank(i+1).Pos, LinkColor, DefaultLinkWidth)
	}
}
