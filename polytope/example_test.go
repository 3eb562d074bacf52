package polytope_test

import (
	"fmt"

	"github.com/rafewenger/iso3D-sub000/polytope"
)

// ExampleGenCube3D builds the canonical cube and reports its low-x facet.
func ExampleGenCube3D() {
	cube := polytope.GenCube3D()
	fmt.Println(cube.NumVertices(), cube.NumEdges(), cube.NumFacets())
	fmt.Println(cube.FacetVertices(0))
	// Output:
	// 8 12 6
	// [0 2 4 6]
}
