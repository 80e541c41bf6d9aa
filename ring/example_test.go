package ring_test

import (
	"fmt"

	"github.com/katalvlaran/vgraph/ring"
)

// ExamplePuzzle_Solve solves the first ring from the puzzle book: bring a
// starting sum of 10 down to exactly 0.
func ExamplePuzzle_Solve() {
	p, err := ring.New([]int{-3, 7, -9, 4, -8, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := p.Solve(ring.State{Position: 0, Sum: 10}, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [0:10 1:17 0:14 5:15 4:7 5:8 4:0] 6
}
