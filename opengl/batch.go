package opengl

import (
	"image/color"
	"math"
	"time"

	"github.com/birromer/essaim"
	"gonum.org/v1/gonum/spatial/r2"
)

// vertexSize is the number of float32 per vertex: x, y, r, g, b, a.
const vertexSize = 6

// A batch collects the line segments of a frame as pairs of vertices,
// ready to be sent to OpenGL in a single draw call.
// It implements essaim.Canvas.
type batch struct {
	vertices []float32
	pixel    float64 // size of a screen pixel in simulation units
}

// Clear drops all the segments of the frame.
func (b *batch) Clear() {
	b.vertices = b.vertices[:0]
}

// DrawTank adds the closed outline of a tank.
func (b *batch) DrawTank(t essaim.Tank, c color.Color, scale float64) {
	o := t.Outline(scale)
	for i := range o {
		b.segment(o[i], o[(i+1)%len(o)], c)
	}
}

// DrawSegment adds a segment width pixels wide. Core profiles only rasterize
// lines one pixel wide, so wider segments are drawn as parallel lines one
// pixel apart.
func (b *batch) DrawSegment(p, q r2.Vec, c color.Color, width float64) {
	n := int(math.Round(width))
	if n < 1 {
		n = 1
	}
	var off r2.Vec
	if d := r2.Sub(q, p); b.pixel > 0 && r2.Norm(d) > 0 {
		off = r2.Scale(b.pixel/r2.Norm(d), r2.Vec{X: -d.Y, Y: d.X})
	}
	for k := 0; k < n; k++ {
		o := r2.Scale(float64(k)-float64(n-1)/2, off)
		b.segment(r2.Add(p, o), r2.Add(q, o), c)
	}
}

// Pause sleeps for d.
func (b *batch) Pause(d time.Duration) {
	time.Sleep(d)
}

// frame fills the batch with the current state of s and calls show. Then,
// if advance reports true, it calls step. The frame on screen is always the
// state the step starts from.
func (b *batch) frame(s *essaim.Simulation, show func(), advance func() bool, step func()) {
	essaim.Draw(b, s.State)
	show()
	if advance() {
		step()
	}
}

// count returns the number of vertices in the batch.
func (b *batch) count() int {
	return len(b.vertices) / vertexSize
}

func (b *batch) segment(p, q r2.Vec, c color.Color) {
	r, g, bl, a := rgba(c)
	b.vertices = append(b.vertices,
		float32(p.X), float32(p.Y), r, g, bl, a,
		float32(q.X), float32(q.Y), r, g, bl, a,
	)
}

// rgba returns the components of c as premultiplied floats between 0 and 1.
func rgba(c color.Color) (r, g, b, a float32) {
	const max = 0xffff
	ri, gi, bi, ai := c.RGBA()
	return float32(ri) / max, float32(gi) / max, float32(bi) / max, float32(ai) / max
}
