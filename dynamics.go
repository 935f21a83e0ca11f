package essaim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Derivative returns the time derivative of the unicycle state x under command u:
//  ẋ = v cos θ, ẏ = v sin θ, θ̇ = u.Turn, v̇ = u.Accel
func Derivative(x mat.Vector, u Command) *mat.VecDense {
	θ, v := x.AtVec(RowDir), x.AtVec(RowSpeed)
	sin, cos := math.Sincos(θ)
	return mat.NewVecDense(StateDim, []float64{v * cos, v * sin, u.Turn, u.Accel})
}

// Euler performs one step of forward Euler integration.
func Euler(x mat.Vector, u Command, dt float64) *mat.VecDense {
	next := mat.NewVecDense(StateDim, nil)
	next.AddScaledVec(x, dt, Derivative(x, u))
	return next
}
