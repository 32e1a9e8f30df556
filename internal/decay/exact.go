package decay

import "math"

// Exact evaluates the closed-form solution I*exp(-a*t) at a single point.
// Exact(0, i, a) == i exactly for any a.
func Exact(t, i, a float64) float64 {
	return i * math.Exp(-a*t)
}

// Sample evaluates the exact solution pointwise over a mesh.
func Sample(t Mesh, i, a float64) Solution {
	u := make(Solution, len(t))
	for n, tn := range t {
		u[n] = Exact(tn, i, a)
	}
	return u
}

// FineMesh builds a mesh of n subintervals over [0, tEnd] for overlay
// plotting. The last point is pinned to tEnd to avoid rounding drift.
func FineMesh(tEnd float64, n int) Mesh {
	if n < 1 {
		n = 1
	}
	dt := tEnd / float64(n)
	t := make(Mesh, n+1)
	for k := 1; k < n; k++ {
		t[k] = float64(k) * dt
	}
	t[n] = tEnd
	return t
}
