package experiment

import (
	"fmt"
	"math"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/solver"
)

// Level is one rung of a convergence study.
type Level struct {
	Dt   float64
	Nt   int
	L2   float64
	Rate float64 // observed order log2(E_prev/E_this); 0 on the first level
}

// Convergence halves dt the given number of times for a fixed theta and
// records the L2 error at each level plus the observed convergence rate
// between consecutive levels. Crank-Nicolson should approach rate 2, the
// Euler schemes rate 1.
func Convergence(p decay.Params, levels int) ([]Level, error) {
	if levels < 1 {
		return nil, fmt.Errorf("%w: need at least one level, got %d", decay.ErrInvalidParameter, levels)
	}

	out := make([]Level, 0, levels)
	dt := p.Dt
	prev := 0.0

	for k := 0; k < levels; k++ {
		q := p
		q.Dt = dt
		res, err := solver.Solve(q)
		if err != nil {
			return nil, fmt.Errorf("level %d (dt=%g): %w", k, dt, err)
		}

		l2, err := decay.L2Norm(res.U, res.T, p.I, p.A, res.Dt)
		if err != nil {
			return nil, err
		}

		lvl := Level{Dt: dt, Nt: res.Nt, L2: l2}
		if k > 0 && prev > 0 && l2 > 0 {
			lvl.Rate = math.Log2(prev / l2)
		}
		out = append(out, lvl)

		prev = l2
		dt /= 2
	}

	return out, nil
}
