package solution_test

import (
	"math/rand"
	"testing"

	"github.com/avolokh/varelim/solution"
)

// BenchmarkInsert measures the steady-state cost of offering candidates to
// a full capacity-64 set (most offers are discards, some displace).
func BenchmarkInsert(b *testing.B) {
	set, err := solution.NewMinSolutionSet[int](64)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(1))
	assignment := make([]int, 32)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Insert(solution.MinSolution[int]{Value: rng.Intn(1 << 20), Assignment: assignment})
	}
}
