package essaim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestDerivative(t *testing.T) {
	x := mat.NewVecDense(StateDim, []float64{5, 6, math.Pi / 2, 2})
	f := Derivative(x, Command{Turn: 0.5, Accel: -1})

	assert.InDelta(t, 0, f.AtVec(RowX), 1e-12)
	assert.InDelta(t, 2, f.AtVec(RowY), 1e-12)
	assert.Equal(t, 0.5, f.AtVec(RowDir))
	assert.Equal(t, -1.0, f.AtVec(RowSpeed))
}

func TestEulerWithoutControl(t *testing.T) {
	const dt = DefaultDt
	x := mat.NewVecDense(StateDim, []float64{1, 2, 0.3, 4})
	next := Euler(x, Command{}, dt)

	assert.InDelta(t, 1+dt*4*math.Cos(0.3), next.AtVec(RowX), 1e-12)
	assert.InDelta(t, 2+dt*4*math.Sin(0.3), next.AtVec(RowY), 1e-12)
	assert.Equal(t, 0.3, next.AtVec(RowDir))
	assert.Equal(t, 4.0, next.AtVec(RowSpeed))

	// the input is left untouched
	assert.Equal(t, 1.0, x.AtVec(RowX))
}

func TestEulerAppliesCommand(t *testing.T) {
	x := mat.NewVecDense(StateDim, []float64{0, 0, 0, 0})
	next := Euler(x, Command{Turn: 2, Accel: 4}, 0.5)

	assert.True(t, mat.Equal(mat.NewVecDense(StateDim, []float64{0, 0, 1, 2}), next))
}
