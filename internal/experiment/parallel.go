package experiment

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/decaylab/internal/decay"
	"github.com/san-kum/decaylab/internal/solver"
)

// Sweep is Compare with the per-theta solves fanned out across goroutines.
// The solves are mutually independent, so the dataset is bit-identical to
// a sequential Compare with the same inputs. workers <= 0 means one
// goroutine per theta.
func Sweep(ctx context.Context, p decay.Params, thetas []float64, workers int) (*Dataset, error) {
	if len(thetas) == 0 {
		return nil, fmt.Errorf("%w: no theta values to compare", decay.ErrInvalidParameter)
	}

	results := make([]*decay.Result, len(thetas))
	errs := make([]error, len(thetas))

	var sem chan struct{}
	if workers > 0 {
		sem = make(chan struct{}, workers)
	}

	var wg sync.WaitGroup
	for idx, theta := range thetas {
		wg.Add(1)
		go func(idx int, theta float64) {
			defer wg.Done()

			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			q := p
			q.Theta = theta
			results[idx], errs[idx] = solver.Solve(q)
		}(idx, theta)
	}
	wg.Wait()

	// First failure in sweep order wins, matching Compare's fail-fast.
	for idx, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("theta=%g: %w", thetas[idx], err)
		}
	}

	return assemble(p, thetas, results)
}
