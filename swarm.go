package essaim

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rows of the state matrix.
const (
	RowX     = iota // position along x
	RowY            // position along y
	RowDir          // heading in radians
	RowSpeed        // forward speed

	StateDim // number of state variables per agent
)

// A Tank is the kinematic state of a single agent.
type Tank struct {
	Pos   r2.Vec  // position
	Dir   float64 // heading in radians
	Speed float64 // forward speed
}

// A Swarm holds the state of every agent as the columns of a 4×m matrix.
// Column i is agent i. Rows are x, y, heading and speed.
type Swarm struct {
	x *mat.Dense
}

// NewSwarm returns a swarm of m agents whose state is all zeros.
func NewSwarm(m int) *Swarm {
	if m < 1 {
		panic(fmt.Sprintf("essaim: swarm size must be positive, got %d", m))
	}
	return &Swarm{x: mat.NewDense(StateDim, m, nil)}
}

// NewRandomSwarm returns a swarm of m agents whose state entries are
// independent samples of σ·N(0,1) drawn from src.
// The matrix is filled row by row so that, for a given source,
// the initial state is reproducible.
func NewRandomSwarm(m int, σ float64, src rand.Source) *Swarm {
	s := NewSwarm(m)
	normal := distuv.Normal{Mu: 0, Sigma: σ, Src: src}
	for r := 0; r < StateDim; r++ {
		for c := 0; c < m; c++ {
			s.x.Set(r, c, normal.Rand())
		}
	}
	return s
}

// NewSwarmFrom returns a swarm whose agents start in the given states.
func NewSwarmFrom(tanks []Tank) *Swarm {
	s := NewSwarm(len(tanks))
	for i, t := range tanks {
		s.Set(i, t.Vec())
	}
	return s
}

// Len returns the number of agents.
func (s *Swarm) Len() int {
	_, m := s.x.Dims()
	return m
}

// Index reduces i modulo the swarm size into [0, m).
func (s *Swarm) Index(i int) int {
	m := s.Len()
	return ((i % m) + m) % m
}

// Agent returns a copy of the state of agent i as a column vector.
// i is taken modulo the swarm size so that i+m designates the same agent as i.
func (s *Swarm) Agent(i int) *mat.VecDense {
	return mat.NewVecDense(StateDim, mat.Col(nil, s.Index(i), s.x))
}

// Set overwrites the state of agent i.
func (s *Swarm) Set(i int, x mat.Vector) {
	if x.Len() != StateDim {
		panic(fmt.Sprintf("essaim: state vector has length %d, want %d", x.Len(), StateDim))
	}
	j := s.Index(i)
	for r := 0; r < StateDim; r++ {
		s.x.Set(r, j, x.AtVec(r))
	}
}

// Tank returns the state of agent i.
func (s *Swarm) Tank(i int) Tank {
	j := s.Index(i)
	return Tank{
		Pos:   r2.Vec{X: s.x.At(RowX, j), Y: s.x.At(RowY, j)},
		Dir:   s.x.At(RowDir, j),
		Speed: s.x.At(RowSpeed, j),
	}
}

// Vec returns the state of t as a column vector.
func (t Tank) Vec() *mat.VecDense {
	return mat.NewVecDense(StateDim, []float64{t.Pos.X, t.Pos.Y, t.Dir, t.Speed})
}

// Clone returns a deep copy of s.
func (s *Swarm) Clone() *Swarm {
	return &Swarm{x: mat.DenseCopyOf(s.x)}
}

// Matrix returns the underlying state matrix. It must not be modified.
func (s *Swarm) Matrix() mat.Matrix {
	return s.x
}

// Finite reports whether every state variable of every agent is finite.
func (s *Swarm) Finite() bool {
	for _, v := range s.x.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MeanDistance returns the mean distance between all pairs of agents.
func (s *Swarm) MeanDistance() float64 {
	m := s.Len()
	if m < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			sum += r2.Norm(r2.Sub(s.Tank(j).Pos, s.Tank(i).Pos))
		}
	}
	return sum / float64(m*(m-1)/2)
}
