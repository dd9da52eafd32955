package solver

import (
	"math"
	"testing"
)

func boilingCurve(theta float64) float64 {
	return math.Exp(5.71419+2.71579*theta-0.286590*theta*theta-39.8544/theta-0.122488/(theta*theta)) -
		24.7522*theta + 35.3155*theta*theta
}

func benchmarkSolver(b *testing.B, s Solver) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(boilingCurve, 919.34, 5.1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewton(b *testing.B) {
	benchmarkSolver(b, NewNewton(DefaultOptions()))
}

func BenchmarkNewtonForward(b *testing.B) {
	benchmarkSolver(b, NewNewtonForward(DefaultOptions()))
}

func BenchmarkSecant(b *testing.B) {
	benchmarkSolver(b, NewSecant(DefaultOptions()))
}
