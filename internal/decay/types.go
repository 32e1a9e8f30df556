package decay

import (
	"fmt"
	"math"
)

// Params configures one solve of u' = -a*u, u(0) = I with the theta scheme.
type Params struct {
	I     float64 // initial value u(0)
	A     float64 // decay rate
	T     float64 // requested horizon
	Dt    float64 // requested step
	Theta float64 // scheme weight in [0,1]
}

// Validate reports the first violated precondition, wrapping
// [ErrInvalidParameter]. It is called before any computation.
func (p Params) Validate() error {
	if p.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidParameter, p.Dt)
	}
	if p.T <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %g", ErrInvalidParameter, p.T)
	}
	if p.Theta < 0 || p.Theta > 1 {
		return fmt.Errorf("%w: theta must be in [0,1], got %g", ErrInvalidParameter, p.Theta)
	}
	if d := p.Denominator(); d <= 0 {
		return fmt.Errorf("%w: non-positive denominator 1+theta*a*dt = %g", ErrInvalidParameter, d)
	}
	return nil
}

// Denominator is the implicit-side factor 1 + theta*a*dt of the recurrence.
func (p Params) Denominator() float64 {
	return 1 + p.Theta*p.A*p.Dt
}

// Mesh is an ordered, uniformly spaced sequence of time points.
type Mesh []float64

// NewMesh builds the uniform mesh t[n] = n*dt for n = 0..nt.
func NewMesh(nt int, dt float64) Mesh {
	t := make(Mesh, nt+1)
	for n := 1; n <= nt; n++ {
		t[n] = float64(n) * dt
	}
	return t
}

// Solution holds values aligned index-for-index with a Mesh.
type Solution []float64

func (u Solution) Clone() Solution {
	c := make(Solution, len(u))
	copy(c, u)
	return c
}

func (u Solution) IsValid() bool {
	for _, v := range u {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Result is the outcome of one solve. TActual = Nt*Dt is the realized
// horizon after rounding Nt = round(T/dt); it may differ from TRequested
// and is always reported, never hidden.
type Result struct {
	U          Solution
	T          Mesh
	Dt         float64
	Nt         int
	Theta      float64
	TRequested float64
	TActual    float64
}

// Adjusted reports whether rounding moved the horizon away from the request.
func (r *Result) Adjusted() bool {
	return math.Abs(r.TActual-r.TRequested) > 1e-12*math.Max(1, math.Abs(r.TRequested))
}

// SchemeName names the scheme a theta value selects.
func SchemeName(theta float64) string {
	switch theta {
	case 0:
		return "Forward Euler"
	case 1:
		return "Backward Euler"
	case 0.5:
		return "Crank-Nicolson"
	default:
		return fmt.Sprintf("theta-method (theta=%g)", theta)
	}
}
