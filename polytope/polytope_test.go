package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafewenger/iso3D-sub000/polytope"
)

func TestGenCube3DShape(t *testing.T) {
	cube := polytope.GenCube3D()
	require.Equal(t, 8, cube.NumVertices())
	require.Equal(t, 12, cube.NumEdges())
	require.Equal(t, 6, cube.NumFacets())
	require.Equal(t, []int{0, 2, 4, 6}, cube.FacetVertices(0))
	require.Equal(t, []int{1, 3, 5, 7}, cube.FacetVertices(1))
	require.Equal(t, 1, cube.MidpointCoord(0, 0))
	require.NoError(t, cube.Check())
}

func TestFacetMembershipDuality(t *testing.T) {
	cube := polytope.GenCube3D()
	for f := 0; f < cube.NumFacets(); f++ {
		members := cube.FacetMembers(f)
		listed := map[int]bool{}
		for _, v := range cube.FacetVertices(f) {
			listed[v] = true
		}
		for v := 0; v < cube.NumVertices(); v++ {
			require.Equal(t, listed[v], members.Test(v))
		}
	}
}

func TestSetVertexCoordRejectsOdd(t *testing.T) {
	p := polytope.NewPolytope(polytope.ShapeUndefined, 3)
	require.NoError(t, p.SetSize(1, 1, 0))
	err := p.SetVertexCoord(0, 0, 3)
	require.Error(t, err)
}

func TestSetEdgeRejectsOutOfRange(t *testing.T) {
	p := polytope.NewPolytope(polytope.ShapeUndefined, 3)
	require.NoError(t, p.SetSize(2, 1, 0))
	require.Error(t, p.SetEdge(0, 0, 5))
}

func TestComputeIncidentEdgesIdempotent(t *testing.T) {
	cube := polytope.GenCube3D()
	first := append([]int(nil), cube.IncidentEdges(0)...)
	cube.ComputeIncidentEdges()
	require.Equal(t, first, cube.IncidentEdges(0))
	require.Len(t, cube.IncidentEdges(0), 3)
}

func TestGeneratePrismOverTriangle(t *testing.T) {
	tri := polytope.NewPolytope(polytope.ShapeSimplex, 2)
	require.NoError(t, tri.SetSize(3, 3, 1))
	_ = tri.SetVertexCoord(0, 0, 0)
	_ = tri.SetVertexCoord(0, 1, 0)
	_ = tri.SetVertexCoord(1, 0, 2)
	_ = tri.SetVertexCoord(1, 1, 0)
	_ = tri.SetVertexCoord(2, 0, 0)
	_ = tri.SetVertexCoord(2, 1, 2)
	_ = tri.SetEdge(0, 0, 1)
	_ = tri.SetEdge(1, 1, 2)
	_ = tri.SetEdge(2, 2, 0)
	_ = tri.SetFacetVertex(0, 0, 0)
	_ = tri.SetFacetVertex(0, 1, 1)
	_ = tri.SetFacetVertex(0, 2, 2)

	prism := polytope.GeneratePrism(tri)
	require.Equal(t, 6, prism.NumVertices())
	require.Equal(t, 9, prism.NumEdges())
	// tri is given a single facet, so the prism has the two base copies
	// plus one side facet.
	require.Equal(t, 3, prism.NumFacets())
	require.NoError(t, prism.Check())
}

func TestShapeStringRoundTrip(t *testing.T) {
	require.Equal(t, "Cube", polytope.ShapeCube.String())
	require.Equal(t, polytope.ShapeCube, polytope.ShapeFromString("cube"))
	require.Equal(t, polytope.ShapeUndefined, polytope.ShapeFromString("nonsense"))
}
