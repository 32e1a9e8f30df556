package solver

import (
	"testing"

	"github.com/san-kum/decaylab/internal/decay"
)

func BenchmarkSolveShort(b *testing.B) {
	p := decay.Params{I: 1, A: 2, T: 4, Dt: 0.1, Theta: 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolveLong(b *testing.B) {
	p := decay.Params{I: 1, A: 2, T: 1000, Dt: 0.001, Theta: 0.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAmplification(b *testing.B) {
	sink := 0.0
	for i := 0; i < b.N; i++ {
		sink += Amplification(0.5, 2, 0.1)
	}
	_ = sink
}
