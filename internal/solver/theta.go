// Package solver implements the generalized theta-method for the decay
// equation u' = -a*u. The recurrence lives here and nowhere else; every
// sweep or comparison layer must go through [Solve].
package solver

import (
	"math"

	"github.com/san-kum/decaylab/internal/decay"
)

// Amplification is the per-step factor u[n+1]/u[n] implied by the scheme:
//
//	(1 - (1-theta)*a*dt) / (1 + theta*a*dt)
//
// theta = 0, 1, 0.5 reproduce Forward Euler, Backward Euler and
// Crank-Nicolson without branching.
func Amplification(theta, a, dt float64) float64 {
	return (1 - (1-theta)*a*dt) / (1 + theta*a*dt)
}

// Stable reports whether the scheme is non-growing for the given
// configuration, i.e. |amplification| <= 1.
func Stable(theta, a, dt float64) bool {
	return math.Abs(Amplification(theta, a, dt)) <= 1
}

// Solve advances u' = -a*u from u(0) = I over Nt = round(T/dt) uniform
// steps. The returned result carries the mesh, the trajectory, and the
// realized horizon Nt*dt, which may differ from the requested T.
//
// Preconditions are checked before any computation; violations return an
// error wrapping [decay.ErrInvalidParameter] and a nil result.
func Solve(p decay.Params) (*decay.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	nt := int(math.Round(p.T / p.Dt))
	factor := Amplification(p.Theta, p.A, p.Dt)

	t := decay.NewMesh(nt, p.Dt)
	u := make(decay.Solution, nt+1)
	u[0] = p.I
	for n := 0; n < nt; n++ {
		u[n+1] = factor * u[n]
	}

	return &decay.Result{
		U:          u,
		T:          t,
		Dt:         p.Dt,
		Nt:         nt,
		Theta:      p.Theta,
		TRequested: p.T,
		TActual:    float64(nt) * p.Dt,
	}, nil
}
