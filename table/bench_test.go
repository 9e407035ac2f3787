package table_test

import (
	"testing"

	"github.com/avolokh/varelim/table"
)

// benchTable builds a factor over k binary variables starting at firstIdx,
// cells filled with their own offsets.
func benchTable(b *testing.B, firstIdx, k int) *table.Table[int] {
	b.Helper()
	specs := make([]table.VarSpec, k)
	for i := range specs {
		specs[i] = table.VarSpec{Index: firstIdx + i, DomSize: 2}
	}
	tab, err := table.New[int](specs)
	if err != nil {
		b.Fatal(err)
	}
	values := make([]int, tab.Size())
	for i := range values {
		values[i] = i
	}
	if err = tab.SetValues(values); err != nil {
		b.Fatal(err)
	}

	return tab
}

// BenchmarkOffset measures stride addressing on a 10-variable factor.
func BenchmarkOffset(b *testing.B) {
	tab := benchTable(b, 0, 10)
	assignment := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tab.Offset(assignment); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCombine measures the product of two 8-variable factors sharing
// half their scope (12 union variables, 4096 result cells).
func BenchmarkCombine(b *testing.B) {
	t1 := benchTable(b, 0, 8)
	t2 := benchTable(b, 4, 8)
	add := func(x, y int) int { return x + y }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := table.Combine(t1, t2, add); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMarginalize measures folding one variable out of a 12-variable
// factor.
func BenchmarkMarginalize(b *testing.B) {
	tab := benchTable(b, 0, 12)
	min := func(x, y int) int {
		if y < x {
			return y
		}
		return x
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := table.Marginalize(tab, 6, min); err != nil {
			b.Fatal(err)
		}
	}
}
