package essaim

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Tuned constants of the control law.
const (
	PhaseOffset = 2.0  // offset subtracted along the relative heading of the neighbor
	Repulsion   = 10.0 // strength of the inverse-square repulsion
	Gain        = 3.0  // steering gain on the heading error
)

// A Command is the control input of a unicycle.
type Command struct {
	Turn  float64 // steering rate in radians per unit time
	Accel float64 // forward acceleration
}

// Control computes the command of agent i from the snapshot x.
//
// The agent steers toward the position of its ring neighbor i+1, shifted
// back by PhaseOffset along the neighbor's relative heading. Every other agent
// pushes it away with an inverse-square force. The speed is driven toward the
// norm of the resulting vector.
func (s *Simulation) Control(x *Swarm, i int) Command {
	w, dθ := x.Relative(i, i+1)
	sin, cos := math.Sincos(dθ)
	w = r2.Sub(w, r2.Scale(PhaseOffset, r2.Vec{X: cos, Y: sin}))

	i = x.Index(i)
	for j := 0; j < x.Len(); j++ {
		if j == i {
			continue
		}
		dp, _ := x.Relative(i, j)
		w = r2.Sub(w, r2.Scale(Repulsion/math.Pow(s.distance(i, j, dp), 3), dp))
	}

	v := x.Tank(i).Speed
	return Command{
		Turn:  Gain * Sawtooth(math.Atan2(w.Y, w.X)),
		Accel: r2.Norm(w) - v,
	}
}

// distance returns the norm of dp used in the repulsion denominator.
// Distances below Epsilon are reported as singular and, when the guard is on,
// clamped to Epsilon.
func (s *Simulation) distance(i, j int, dp r2.Vec) float64 {
	d := r2.Norm(dp)
	switch {
	case s.Epsilon > 0 && d < s.Epsilon:
		s.singular(i, j, d)
		return s.Epsilon
	case d == 0:
		s.singular(i, j, d)
	}
	return d
}

func (s *Simulation) singular(i, j int, d float64) {
	s.Singularities++
	if s.Singular != nil {
		s.Singular(i, j, d)
	}
}
