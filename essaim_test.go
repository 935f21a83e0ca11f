package essaim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// ring returns m agents at rest on a circle of radius r, facing its center.
func ring(m int, r float64) *Swarm {
	tanks := make([]Tank, m)
	for i := range tanks {
		θ := 2 * math.Pi * float64(i) / float64(m)
		sin, cos := math.Sincos(θ)
		tanks[i] = Tank{Pos: r2.Vec{X: r * cos, Y: r * sin}, Dir: θ + math.Pi}
	}
	return NewSwarmFrom(tanks)
}

func TestNextLeavesSnapshotUntouched(t *testing.T) {
	s := New(DefaultSwarmSize, DefaultSeed)
	old := s.State.Clone()

	next := s.Next(s.State)
	assert.True(t, mat.Equal(old.Matrix(), s.State.Matrix()))
	assert.False(t, mat.Equal(old.Matrix(), next.Matrix()))
	assert.Equal(t, 0, s.Frame)
}

func TestNextReadsOnlyTheSnapshot(t *testing.T) {
	s := New(DefaultSwarmSize, DefaultSeed)
	old := s.State

	next := s.Next(old)
	for i := 0; i < old.Len(); i++ {
		want := Euler(old.Agent(i), s.Control(old, i), s.Dt)
		assert.True(t, mat.Equal(want, next.Agent(i)), "agent %d", i)
	}
}

func TestStepAdvancesFrame(t *testing.T) {
	s := New(DefaultSwarmSize, DefaultSeed)
	for i := 0; i < 3; i++ {
		got := s.Step()
		assert.Same(t, s.State, got)
	}
	assert.Equal(t, 3, s.Frame)
}

func TestTrajectoryIsReproducible(t *testing.T) {
	a := New(DefaultSwarmSize, DefaultSeed)
	b := New(DefaultSwarmSize, DefaultSeed)
	for k := 0; k < 50; k++ {
		a.Step()
		b.Step()
	}
	assert.True(t, mat.Equal(a.State.Matrix(), b.State.Matrix()))
}

func TestSeededSwarmStaysFinite(t *testing.T) {
	s := New(DefaultSwarmSize, DefaultSeed)
	for k := 0; k < 100; k++ {
		require.True(t, s.Step().Finite(), "non-finite state at frame %d", s.Frame)
	}
}

func TestRingContracts(t *testing.T) {
	s := NewFrom(ring(6, 12))

	d := []float64{s.State.MeanDistance()}
	for k := 0; k < 100; k++ {
		st := s.Step()
		require.True(t, st.Finite(), "non-finite state at frame %d", s.Frame)
		d = append(d, st.MeanDistance())
	}

	// agents start at rest, so the first step leaves positions unchanged
	assert.InDelta(t, d[0], d[1], 1e-12)
	for k := 1; k <= 20; k++ {
		assert.Less(t, d[k+1], d[k], "frame %d", k+1)
	}
	assert.Less(t, d[100], d[0])
	assert.Zero(t, s.Singularities)
}

func TestSingleAgentSpins(t *testing.T) {
	s := NewFrom(NewSwarmFrom([]Tank{{Pos: r2.Vec{X: 1, Y: 1}}}))

	for k := 0; k < 100; k++ {
		before := s.State.Tank(0).Dir
		after := s.Step().Tank(0).Dir
		require.InDelta(t, s.Dt*Gain*math.Pi, after-before, 1e-9, "frame %d", s.Frame)
	}

	tank := s.State.Tank(0)
	assert.True(t, s.State.Finite())
	assert.InDelta(t, PhaseOffset, tank.Speed, 0.05)
	assert.InDelta(t, 100*s.Dt*Gain*math.Pi, tank.Dir, 1e-9)
	assert.Zero(t, s.Singularities)
}

func TestResetDrawsNewSwarm(t *testing.T) {
	s := New(DefaultSwarmSize, DefaultSeed)
	first := s.State
	s.Step()
	s.Reset()

	assert.Equal(t, 0, s.Frame)
	assert.Equal(t, DefaultSwarmSize, s.State.Len())
	assert.False(t, mat.Equal(first.Matrix(), s.State.Matrix()))

	r := NewFrom(NewSwarm(2))
	r.Reset()
	assert.True(t, r.State.Finite())
}
