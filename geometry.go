package essaim

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Relative returns the position and heading of agent j as seen from the body
// frame of agent i. The position is rotated into the frame of i, and the
// heading difference θj-θi is not wrapped.
func (s *Swarm) Relative(i, j int) (dp r2.Vec, dθ float64) {
	a, b := s.Tank(i), s.Tank(j)
	sin, cos := math.Sincos(a.Dir)
	R := mat.NewDense(2, 2, []float64{
		cos, sin,
		-sin, cos,
	})
	d := r2.Sub(b.Pos, a.Pos)
	var v mat.VecDense
	v.MulVec(R, mat.NewVecDense(2, []float64{d.X, d.Y}))
	return r2.Vec{X: v.AtVec(0), Y: v.AtVec(1)}, b.Dir - a.Dir
}

// Sawtooth wraps an angle into (-π, π].
func Sawtooth(θ float64) float64 {
	return θ - 2*math.Pi*math.Ceil((θ-math.Pi)/(2*math.Pi))
}
