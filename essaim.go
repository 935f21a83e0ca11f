// Package essaim runs a decentralized swarm of unicycle agents that settle
// into a rotating ring formation.
//
// Each agent follows its successor in a fixed ring, offset by the relative
// heading of that successor, and is repelled by every other agent.
// Agents only use positions and headings expressed in their own body frame.
// The simulation is headless; drawing goes through the Canvas interface.
package essaim

import (
	"golang.org/x/exp/rand"
)

// Default parameters of a simulation.
const (
	DefaultSwarmSize = 6
	DefaultSeed      = 0
	DefaultDt        = 0.05 // simulated seconds per frame
	DefaultSpread    = 5.0  // standard deviation of the initial state
	DefaultEpsilon   = 1e-6 // smallest distance used in the repulsion term
)

// A Simulation contains the state and the parameters of a swarm simulation.
type Simulation struct {
	// State is the state of the swarm at the current frame.
	State *Swarm

	// Dt is the time step of the simulation.
	Dt float64

	// Epsilon is the distance under which two agents are considered
	// to coincide. The repulsion between them is computed as if they were
	// Epsilon apart. Zero disables the guard and lets the division
	// by a zero distance through.
	Epsilon float64

	// Singular, if not nil, is called whenever agents i and j are closer
	// than Epsilon (or coincide when the guard is disabled).
	Singular func(i, j int, d float64)

	// Frame is the number of steps run so far.
	Frame int

	// Singularities counts the singular repulsions met so far, whether or not
	// Singular is set.
	Singularities int

	rng *rand.Rand
}

// New returns a simulation of m agents whose initial state is drawn from
// a generator seeded with seed.
func New(m int, seed uint64) *Simulation {
	rng := rand.New(rand.NewSource(seed))
	return &Simulation{
		State:   NewRandomSwarm(m, DefaultSpread, rng),
		Dt:      DefaultDt,
		Epsilon: DefaultEpsilon,
		rng:     rng,
	}
}

// NewFrom returns a simulation starting from the given swarm.
func NewFrom(s *Swarm) *Simulation {
	return &Simulation{
		State:   s,
		Dt:      DefaultDt,
		Epsilon: DefaultEpsilon,
	}
}

// Reset replaces the state with a fresh random swarm of the same size,
// drawn from the generator of the simulation.
func (s *Simulation) Reset() {
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	s.State = NewRandomSwarm(s.State.Len(), DefaultSpread, s.rng)
	s.Frame = 0
	s.Singularities = 0
}

// Next returns the state of the swarm one time step after old.
// Every agent computes its command from old and the new states are written
// to a separate swarm, so old is left untouched.
func (s *Simulation) Next(old *Swarm) *Swarm {
	next := NewSwarm(old.Len())
	for i := 0; i < old.Len(); i++ {
		u := s.Control(old, i)
		next.Set(i, Euler(old.Agent(i), u, s.Dt))
	}
	return next
}

// Step runs a single simulation step and returns the new state.
func (s *Simulation) Step() *Swarm {
	s.State = s.Next(s.State)
	s.Frame++
	return s.State
}
