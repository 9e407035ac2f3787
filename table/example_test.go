package table_test

import (
	"fmt"

	"github.com/avolokh/varelim/table"
)

// ExampleTable builds the canonical two-variable factor and addresses one
// cell through the stride scheme.
func ExampleTable() {
	// var0: domain 2, step 1; var1: domain 3, step 2 — size 6.
	tab, _ := table.NewWithValues(
		[]table.VarSpec{{Index: 0, DomSize: 2}, {Index: 1, DomSize: 3}},
		[]int{0, 1, 2, 3, 4, 5},
	)

	off, _ := tab.Offset([]int{1, 2})
	v, _ := tab.At([]int{1, 2})
	fmt.Printf("size=%d offset(1,2)=%d value=%d\n", tab.Size(), off, v)
	fmt.Println(tab)

	// Output:
	// size=6 offset(1,2)=5 value=5
	// Table(vars:<0,2,1><1,3,2> values=[0,1,2,3,4,5])
}

// ExampleCombine multiplies two cost factors over a shared variable and
// then minimizes the shared variable out — one step of min-sum
// elimination.
func ExampleCombine() {
	f01, _ := table.NewWithValues(
		[]table.VarSpec{{Index: 0, DomSize: 2}, {Index: 1, DomSize: 2}},
		[]int{0, 3, 2, 1},
	)
	f12, _ := table.NewWithValues(
		[]table.VarSpec{{Index: 1, DomSize: 2}, {Index: 2, DomSize: 2}},
		[]int{1, 4, 0, 2},
	)

	add := func(a, b int) int { return a + b }
	min := func(a, b int) int {
		if b < a {
			return b
		}
		return a
	}

	product, _ := table.Combine(f01, f12, add)
	msg, _ := table.Marginalize(product, 1, min)

	fmt.Println(msg)

	// Output:
	// Table(vars:<0,2,1><2,2,2> values=[1,4,0,3])
}
