package decay

import (
	"fmt"
	"math"
)

// L2Norm computes the discrete L2 error between a numerical solution and
// the exact solution sampled on the same mesh:
//
//	E = sqrt( dt * sum_n (I*exp(-a*t[n]) - u[n])^2 )
//
// dt must be the realized step of the mesh (post Nt-rounding), so the
// weight stays consistent with the mesh actually produced.
func L2Norm(u Solution, t Mesh, i, a, dt float64) (float64, error) {
	if len(u) != len(t) {
		return 0, fmt.Errorf("%w: len(u)=%d, len(t)=%d", ErrShapeMismatch, len(u), len(t))
	}
	if len(t) == 0 {
		return 0, ErrEmptyMesh
	}
	if dt <= 0 {
		return 0, fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidParameter, dt)
	}

	sum := 0.0
	for n := range u {
		e := Exact(t[n], i, a) - u[n]
		sum += e * e
	}
	return math.Sqrt(dt * sum), nil
}
