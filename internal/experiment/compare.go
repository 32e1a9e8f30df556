// Package experiment sweeps scheme parameters over the decay solver and
// assembles comparison datasets. It never re-derives the recurrence: every
// numerical value comes from a solver.Solve call.
package experiment

import (
	"fmt"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/solver"
)

// minFineSubintervals is the floor on the exact-overlay resolution.
const minFineSubintervals = 1000

// Run is one theta's trajectory plus its error diagnostic.
type Run struct {
	Theta  float64
	Result *decay.Result
	L2     float64
}

// Dataset maps each swept theta to its solve, together with an
// independently resolved exact curve for overlay plotting. The exact
// curve does not participate in error computation.
type Dataset struct {
	Params decay.Params // Theta field is ignored; the sweep supplies it
	Thetas []float64    // sweep order, for deterministic iteration
	Runs   map[float64]*Run
	ExactT decay.Mesh
	ExactU decay.Solution
}

// Compare invokes the solver once per theta with identical I, a, T, dt and
// collects the results. The whole sweep aborts on the first invalid
// configuration; no partial dataset is returned.
func Compare(p decay.Params, thetas []float64) (*Dataset, error) {
	if len(thetas) == 0 {
		return nil, fmt.Errorf("%w: no theta values to compare", decay.ErrInvalidParameter)
	}

	results := make([]*decay.Result, len(thetas))
	for idx, theta := range thetas {
		q := p
		q.Theta = theta
		res, err := solver.Solve(q)
		if err != nil {
			return nil, fmt.Errorf("theta=%g: %w", theta, err)
		}
		results[idx] = res
	}

	return assemble(p, thetas, results)
}

// assemble builds the dataset from per-theta results, attaching L2 error
// diagnostics and the fine exact overlay. Shared by Compare and Sweep so
// both produce identical datasets for identical inputs.
func assemble(p decay.Params, thetas []float64, results []*decay.Result) (*Dataset, error) {
	ds := &Dataset{
		Params: p,
		Thetas: append([]float64(nil), thetas...),
		Runs:   make(map[float64]*Run, len(thetas)),
	}

	for idx, theta := range thetas {
		res := results[idx]
		l2, err := decay.L2Norm(res.U, res.T, p.I, p.A, res.Dt)
		if err != nil {
			return nil, err
		}
		ds.Runs[theta] = &Run{Theta: theta, Result: res, L2: l2}
	}

	// Overlay out-resolves the numerical meshes; all runs share the same
	// realized horizon because T and dt are identical across the sweep.
	fineN := 10 * results[0].Nt
	if fineN < minFineSubintervals {
		fineN = minFineSubintervals
	}
	ds.ExactT = decay.FineMesh(results[0].TActual, fineN)
	ds.ExactU = decay.Sample(ds.ExactT, p.I, p.A)

	return ds, nil
}
