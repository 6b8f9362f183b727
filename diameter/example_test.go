package diameter_test

import (
	"fmt"

	"github.com/katalvlaran/graphseq/builder"
	"github.com/katalvlaran/graphseq/diameter"
)

// ExampleCompute finds the diameter of a 6-cycle: three antipodal pairs.
func ExampleCompute() {
	g, _ := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithExcelColumnIDs()},
		builder.Cycle(6),
	)

	res, err := diameter.Compute(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("diameter:", res.Distance)
	for _, p := range res.Pairs.Sorted() {
		fmt.Println(p.A, p.B)
	}
	// Output:
	// diameter: 3
	// A D
	// B E
	// C F
}
