package mctable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafewenger/iso3D-sub000/mcprop"
	"github.com/rafewenger/iso3D-sub000/mctable"
	"github.com/rafewenger/iso3D-sub000/polytope"
)

func newCubeTable(t *testing.T) *mctable.Table {
	t.Helper()
	cube := polytope.GenCube3D()
	tbl := mctable.NewTable(cube, 2)
	tbl.Properties.Encoding = mcprop.EncodingBinary
	require.NoError(t, tbl.SetNumIsosurfaceVertices(cube.NumEdges()))
	require.NoError(t, tbl.StorePolyEdgesAsIsoVertices(0))
	require.NoError(t, tbl.SetNumTableEntries(256))
	return tbl
}

func TestBaseAndLabelValues(t *testing.T) {
	tbl := newCubeTable(t)
	require.Equal(t, 2, tbl.Base())
	require.Equal(t, 0, tbl.NegativeLabelValue())
	require.Equal(t, 1, tbl.PositiveLabelValue())

	tbl.Properties.Encoding = mcprop.EncodingBase3
	require.Equal(t, 3, tbl.Base())
	require.Equal(t, 2, tbl.PositiveLabelValue())
}

func TestDecodeLabelsBinary(t *testing.T) {
	tbl := newCubeTable(t)
	digits := tbl.DecodeLabels(0b01010101)
	require.Equal(t, []int{1, 0, 1, 0, 1, 0, 1, 0}, digits)
}

func TestSetAndReadSimplex(t *testing.T) {
	tbl := newCubeTable(t)
	require.NoError(t, tbl.SetSimplexVertices(5, []int{0, 1, 2, 3, 4, 5}, 2))
	require.Equal(t, 2, tbl.NumSimplices(5))
	require.Equal(t, []int{0, 1, 2}, tbl.SimplexVerticesOf(5, 0))
	require.Equal(t, 3, tbl.SimplexVertex(5, 1, 0))
}

func TestFlipIsoPolyOrientation(t *testing.T) {
	tbl := newCubeTable(t)
	require.NoError(t, tbl.SetSimplexVertices(5, []int{0, 1, 2}, 1))
	tbl.FlipIsoPolyOrientation(5, 0)
	require.Equal(t, []int{0, 2, 1}, tbl.SimplexVerticesOf(5, 0))
	tbl.FlipIsoPolyOrientation(5, 0)
	require.Equal(t, []int{0, 1, 2}, tbl.SimplexVerticesOf(5, 0))
}

func TestFlipAllIsoPolyOrientationsTableTogglesProperty(t *testing.T) {
	tbl := newCubeTable(t)
	tbl.Properties.Orientation = mcprop.PositiveOrient
	require.NoError(t, tbl.SetSimplexVertices(5, []int{0, 1, 2}, 1))
	tbl.FlipAllIsoPolyOrientationsTable()
	require.Equal(t, mcprop.NegativeOrient, tbl.Properties.Orientation)
	require.Equal(t, []int{0, 2, 1}, tbl.SimplexVerticesOf(5, 0))
}

func TestSetNumSimplicesZeroFreesStorage(t *testing.T) {
	tbl := newCubeTable(t)
	require.NoError(t, tbl.SetSimplexVertices(5, []int{0, 1, 2}, 1))
	require.NoError(t, tbl.SetNumSimplices(5, 0))
	require.Equal(t, 0, tbl.NumSimplices(5))
}

func TestAreAllFacetVertexLabelsIdentical(t *testing.T) {
	tbl := newCubeTable(t)
	// facet 0 (low-x) = {0,2,4,6}, i.e. bits 0,2,4,6 of the table index.
	// 0 = 0b00000000 labels every vertex 0.
	// 170 = 0b10101010 sets only bits 1,3,5,7 (vertices 1,3,5,7, which are
	// NOT in facet 0), so it agrees with 0 on every facet-0 vertex.
	// 1 = 0b00000001 sets bit 0 (vertex 0, which IS in facet 0), so it
	// disagrees with 0 on that vertex.
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0}, tbl.DecodeLabels(0))
	require.Equal(t, []int{0, 1, 0, 1, 0, 1, 0, 1}, tbl.DecodeLabels(170))
	require.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0}, tbl.DecodeLabels(1))

	require.True(t, tbl.AreAllFacetVertexLabelsIdentical(0, 170, 0))
	require.False(t, tbl.AreAllFacetVertexLabelsIdentical(0, 1, 0))
}

func TestCheckCatchesOutOfRangeSimplexVertex(t *testing.T) {
	tbl := newCubeTable(t)
	require.NoError(t, tbl.SetSimplexVertices(5, []int{0, 1, 999}, 1))
	require.Error(t, tbl.Check())
}
