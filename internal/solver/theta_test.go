package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/decaylab/internal/decay"
)

func TestBackwardEulerAmplification(t *testing.T) {
	// theta=1: factor = 1/(1+a*dt); with a=2, dt=0.2 that is 1/1.4.
	got := Amplification(1, 2, 0.2)
	want := 1.0 / 1.4
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("expected %.10f, got %.10f", want, got)
	}

	res, err := Solve(decay.Params{I: 1, A: 2, T: 4, Dt: 0.2, Theta: 1})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.U[1]-want) > 1e-15 {
		t.Errorf("expected u[1]=%.10f, got %.10f", want, res.U[1])
	}
}

func TestSolveArrayLengths(t *testing.T) {
	res, err := Solve(decay.Params{I: 1, A: 2, T: 4, Dt: 0.2, Theta: 1})
	if err != nil {
		t.Fatal(err)
	}

	if res.Nt != 20 {
		t.Errorf("expected Nt=20, got %d", res.Nt)
	}
	if len(res.U) != 21 || len(res.T) != 21 {
		t.Errorf("expected arrays of length 21, got len(u)=%d len(t)=%d", len(res.U), len(res.T))
	}
	if res.U[0] != 1 {
		t.Errorf("u[0] should equal I exactly, got %g", res.U[0])
	}
	if math.Abs(res.T[20]-4.0) > 1e-12 {
		t.Errorf("expected final time 4, got %g", res.T[20])
	}
}

func TestForwardEulerOscillation(t *testing.T) {
	// a*dt = 1.2 puts Forward Euler in the oscillatory regime: the factor
	// 1 - a*dt is negative, so the sign flips every step.
	res, err := Solve(decay.Params{I: 1, A: 2, T: 3, Dt: 0.6, Theta: 0})
	if err != nil {
		t.Fatal(err)
	}
	for n := 0; n+1 < len(res.U); n++ {
		if res.U[n]*res.U[n+1] >= 0 {
			t.Fatalf("expected alternating signs at step %d: %g -> %g", n, res.U[n], res.U[n+1])
		}
	}
}

func TestForwardEulerInstability(t *testing.T) {
	// a*dt = 3 > 2: Forward Euler grows without bound while Backward Euler
	// with the same a, dt decays monotonically.
	fe, err := Solve(decay.Params{I: 1, A: 2, T: 15, Dt: 1.5, Theta: 0})
	if err != nil {
		t.Fatal(err)
	}

	grew := false
	for n := 0; n+1 < len(fe.U); n++ {
		if math.Abs(fe.U[n+1]) > math.Abs(fe.U[n]) {
			grew = true
			break
		}
	}
	if !grew {
		t.Error("Forward Euler should grow in magnitude for a*dt > 2")
	}
	if Stable(0, 2, 1.5) {
		t.Error("Forward Euler should be flagged unstable for a*dt > 2")
	}

	be, err := Solve(decay.Params{I: 1, A: 2, T: 15, Dt: 1.5, Theta: 1})
	if err != nil {
		t.Fatal(err)
	}
	for n := 0; n+1 < len(be.U); n++ {
		if be.U[n+1] >= be.U[n] {
			t.Fatalf("Backward Euler should decrease monotonically, step %d: %g -> %g", n, be.U[n], be.U[n+1])
		}
	}
	if !Stable(1, 2, 1.5) {
		t.Error("Backward Euler should be flagged stable for any positive a*dt")
	}
}

func TestIntegralParametersStayFloating(t *testing.T) {
	// All-integer inputs must still produce real-valued decay; integer
	// truncation in the factor would freeze u at I.
	res, err := Solve(decay.Params{I: 1, A: 1, T: 3, Dt: 1, Theta: 1})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.U[1]-0.5) > 1e-15 {
		t.Errorf("expected u[1]=0.5, got %g", res.U[1])
	}
	if math.Abs(res.U[2]-0.25) > 1e-15 {
		t.Errorf("expected u[2]=0.25, got %g", res.U[2])
	}
}

func TestHorizonRounding(t *testing.T) {
	// T=1 is not a multiple of dt=0.3: Nt = round(10/3) = 3, realized
	// horizon 0.9. The adjustment must be reported.
	res, err := Solve(decay.Params{I: 1, A: 2, T: 1, Dt: 0.3, Theta: 0.5})
	if err != nil {
		t.Fatal(err)
	}

	if res.Nt != 3 {
		t.Errorf("expected Nt=3, got %d", res.Nt)
	}
	if math.Abs(res.TActual-0.9) > 1e-12 {
		t.Errorf("expected realized horizon 0.9, got %g", res.TActual)
	}
	if res.TRequested != 1 {
		t.Errorf("requested horizon should be preserved, got %g", res.TRequested)
	}
	if !res.Adjusted() {
		t.Error("rounding adjustment should be reported")
	}
}

func TestSolveInvalidParameters(t *testing.T) {
	bad := []decay.Params{
		{I: 1, A: 2, T: 4, Dt: 0, Theta: 0.5},
		{I: 1, A: 2, T: -1, Dt: 0.1, Theta: 0.5},
		{I: 1, A: 2, T: 4, Dt: 0.1, Theta: 1.5},
		{I: 1, A: -2, T: 4, Dt: 1, Theta: 1},
	}
	for i, p := range bad {
		res, err := Solve(p)
		if !errors.Is(err, decay.ErrInvalidParameter) {
			t.Errorf("case %d: expected ErrInvalidParameter, got %v", i, err)
		}
		if res != nil {
			t.Errorf("case %d: expected nil result on error", i)
		}
	}
}

func TestCrankNicolsonBeatsEuler(t *testing.T) {
	p := decay.Params{I: 1, A: 2, T: 4, Dt: 0.1}

	errFor := func(theta float64) float64 {
		q := p
		q.Theta = theta
		res, err := Solve(q)
		if err != nil {
			t.Fatal(err)
		}
		e, err := decay.L2Norm(res.U, res.T, p.I, p.A, res.Dt)
		if err != nil {
			t.Fatal(err)
		}
		return e
	}

	cn := errFor(0.5)
	be := errFor(1)
	if cn >= be {
		t.Errorf("Crank-Nicolson error %g should beat Backward Euler %g", cn, be)
	}
}
