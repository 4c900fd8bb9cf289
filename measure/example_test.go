package measure_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algonotes/measure"
)

// ExampleRun fits selection sort's comparison counts, which are exactly n(n-1)/2.
func ExampleRun() {
	w, _ := measure.Lookup("sort/selection")
	rep, err := measure.Run(context.Background(), w, []int{10, 20, 40})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rep.Samples)
	fmt.Println(rep.Estimate.Class, rep.Match)
	// Output:
	// [{10 45} {20 190} {40 780}]
	// O(n^2) true
}
