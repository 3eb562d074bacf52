package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafewenger/iso3D-sub000/polytope"
)

// TestHalfEdgeFacetTraversal builds the half-edge cycle around the cube's
// facet 0 (low-x, vertices {0,2,4,6}) by hand and walks it via Next/Prev,
// checking that the walk visits the facet's vertices in cyclic order and
// that Next/Prev are mutual inverses.
func TestHalfEdgeFacetTraversal(t *testing.T) {
	p := polytope.GenCube3D()
	require.False(t, p.HasHalfEdges())
	p.AddHalfEdges()
	require.True(t, p.HasHalfEdges())

	// Facet 0 = {0,2,4,6} lies at x=0; in (y,z) those corners are
	// 0:(0,0), 2:(2,0), 6:(2,2), 4:(0,2), so the boundary cycle visits
	// them in that order: 0->2 (edge 4 forward), 2->6 (edge 10 forward),
	// 6->4 (edge 6 reverse), 4->0 (edge 8 reverse).
	require.Equal(t, []int{0, 2}, []int{p.EdgeEndpoint(4, 0), p.EdgeEndpoint(4, 1)})
	require.Equal(t, []int{2, 6}, []int{p.EdgeEndpoint(10, 0), p.EdgeEndpoint(10, 1)})
	require.Equal(t, []int{4, 6}, []int{p.EdgeEndpoint(6, 0), p.EdgeEndpoint(6, 1)})
	require.Equal(t, []int{0, 4}, []int{p.EdgeEndpoint(8, 0), p.EdgeEndpoint(8, 1)})

	const (
		he0to2 = 2 * 4   // edge 4, forward
		he2to6 = 2 * 10  // edge 10, forward
		he6to4 = 2*6 + 1 // edge 6, reverse
		he4to0 = 2*8 + 1 // edge 8, reverse
	)
	cycle := []int{he0to2, he2to6, he6to4, he4to0}
	for i, h := range cycle {
		n := cycle[(i+1)%len(cycle)]
		p.SetNext(h, n)
		p.SetPrev(n, h)
	}

	require.Equal(t, 4, polytope.HalfEdgeEdge(he0to2))
	require.True(t, polytope.HalfEdgeIsForward(he0to2))
	require.False(t, polytope.HalfEdgeIsForward(he6to4))

	// Walk the cycle forward via Next starting at he0to2, and confirm it
	// reproduces the facet's vertex order after exactly 4 steps.
	visited := []int{p.HalfEdgeFrom(he0to2)}
	h := he0to2
	for i := 0; i < 4; i++ {
		h = p.Next(h)
		visited = append(visited, p.HalfEdgeFrom(h))
	}
	require.Equal(t, []int{0, 2, 6, 4, 0}, visited)
	require.Equal(t, he0to2, h, "walking Next four times must return to the start")

	// Prev must be Next's inverse all the way around.
	h = he0to2
	for i := 0; i < len(cycle); i++ {
		n := p.Next(h)
		require.Equal(t, h, p.Prev(n))
		h = n
	}

	// An edge outside the populated cycle stays unset.
	require.Equal(t, -1, p.Next(0))
	require.Equal(t, -1, p.Prev(0))
}
