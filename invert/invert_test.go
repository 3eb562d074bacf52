package invert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafewenger/iso3D-sub000/invert"
	"github.com/rafewenger/iso3D-sub000/mctable"
	"github.com/rafewenger/iso3D-sub000/polytope"
)

// buildSmallTable returns the 2-entry table from the inversion worked
// example: entry 0 holds simplex [0,1,2], entry 1 holds simplex [0,2,1],
// separation = SeparateNeg, orientation = PositiveOrient.
func buildSmallTable(t *testing.T) *mctable.Table {
	t.Helper()
	cube := polytope.GenCube3D()
	tbl := mctable.NewTable(cube, 2)
	tbl.Properties.SetEncoding("BINARY")
	tbl.Properties.SetSeparation("SeparateNeg")
	tbl.Properties.SetOrientation("PositiveOrient")

	require.NoError(t, tbl.SetNumIsosurfaceVertices(cube.NumEdges()))
	require.NoError(t, tbl.StorePolyEdgesAsIsoVertices(0))
	require.NoError(t, tbl.SetNumTableEntries(2))
	require.NoError(t, tbl.SetSimplexVertices(0, []int{0, 1, 2}, 1))
	require.NoError(t, tbl.SetSimplexVertices(1, []int{0, 2, 1}, 1))
	return tbl
}

func TestInvertWorkedExample(t *testing.T) {
	a := buildSmallTable(t)

	b, err := invert.Invert(a)
	require.NoError(t, err)

	require.Equal(t, []int{0, 2, 1}, b.SimplexVerticesOf(0, 0))
	require.Equal(t, []int{0, 1, 2}, b.SimplexVerticesOf(1, 0))
	require.Equal(t, "SeparatePos", b.Properties.Separation.String())
	require.Equal(t, "NegativeOrient", b.Properties.Orientation.String())
}

func TestInvertIsInvolution(t *testing.T) {
	a := buildSmallTable(t)

	b, err := invert.Invert(a)
	require.NoError(t, err)
	c, err := invert.Invert(b)
	require.NoError(t, err)

	require.Equal(t, a.SimplexVerticesOf(0, 0), c.SimplexVerticesOf(0, 0))
	require.Equal(t, a.SimplexVerticesOf(1, 0), c.SimplexVerticesOf(1, 0))
	require.Equal(t, a.Properties.Separation, c.Properties.Separation)
	require.Equal(t, a.Properties.Orientation, c.Properties.Orientation)
}

func TestInvertSharesPolytope(t *testing.T) {
	a := buildSmallTable(t)
	b, err := invert.Invert(a)
	require.NoError(t, err)
	require.Same(t, a.Poly, b.Poly)
}
