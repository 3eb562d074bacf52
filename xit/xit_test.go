package xit_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rafewenger/iso3D-sub000/isovertex"
	"github.com/rafewenger/iso3D-sub000/mcprop"
	"github.com/rafewenger/iso3D-sub000/mctable"
	"github.com/rafewenger/iso3D-sub000/polytope"
	"github.com/rafewenger/iso3D-sub000/xit"
)

// polytopeSnapshot is a cmp-friendly projection of a Polytope's exported
// observations, since Polytope itself carries unexported fields (including
// a bitset.Set per facet) that cmp cannot traverse without exposing them.
type polytopeSnapshot struct {
	Shape   string
	Dim     int
	Coords  [][]int
	Edges   [][2]int
	Facets  [][]int
}

func polySnapshot(p *polytope.Polytope) polytopeSnapshot {
	s := polytopeSnapshot{Shape: p.Shape().String(), Dim: p.Dimension()}
	for v := 0; v < p.NumVertices(); v++ {
		coord := make([]int, p.Dimension())
		for axis := range coord {
			coord[axis] = p.VertexCoord(v, axis)
		}
		s.Coords = append(s.Coords, coord)
	}
	for e := 0; e < p.NumEdges(); e++ {
		s.Edges = append(s.Edges, [2]int{p.EdgeEndpoint(e, 0), p.EdgeEndpoint(e, 1)})
	}
	for f := 0; f < p.NumFacets(); f++ {
		s.Facets = append(s.Facets, p.FacetVertices(f))
	}
	return s
}

// buildRoundTripTable builds a tiny 2-entry table over a cube, exercising
// every isoVertex kind (inV/inE/inF/c) plus a label, so the writer/reader
// round trip has something to preserve.
func buildRoundTripTable(t *testing.T) *mctable.Table {
	t.Helper()

	poly := polytope.GenCube3D()
	table := mctable.NewTable(poly, 2)
	table.Properties.TableType = mcprop.TableTypeIsosurface
	table.Properties.Encoding = mcprop.EncodingBinary
	table.Properties.GridVertexLabel = mcprop.GridVertexLabelNegPos
	table.Properties.Triangulation = mcprop.TriangulationConvexHull
	table.Properties.Separation = mcprop.SeparateNegative
	table.Properties.Orientation = mcprop.PositiveOrient
	table.Properties.SeparateOpposite = true

	require.NoError(t, table.SetNumIsosurfaceVertices(4))
	require.NoError(t, table.SetIsosurfaceVertex(0, isovertex.OnVertex(0)))
	require.NoError(t, table.SetIsosurfaceVertex(1, isovertex.OnEdge(4)))
	require.NoError(t, table.SetIsosurfaceVertex(2, isovertex.OnFacet(1)))
	require.NoError(t, table.SetIsosurfaceVertex(3, isovertex.AtPoint(1, 1, 1).WithLabel("center")))

	require.NoError(t, table.SetNumTableEntries(2))
	require.NoError(t, table.SetSimplexVertices(0, nil, 0))
	require.NoError(t, table.SetSimplexVertices(1, []int{0, 1, 2, 1, 2, 3}, 2))

	return table
}

func TestWriteReadRoundTripV2(t *testing.T) {
	table := buildRoundTripTable(t)

	var buf bytes.Buffer
	require.NoError(t, xit.Write(&buf, table, xit.WithCreationDate("2026-01-01")))

	got, err := xit.Read(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(polySnapshot(table.Poly), polySnapshot(got.Poly)); diff != "" {
		t.Errorf("polytope mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, table.Properties, got.Properties)
	require.Equal(t, table.NumIsosurfaceVertices(), got.NumIsosurfaceVertices())
	for w := 0; w < table.NumIsosurfaceVertices(); w++ {
		require.Equal(t, table.IsosurfaceVertex(w), got.IsosurfaceVertex(w))
	}
	require.Equal(t, table.NumTableEntries(), got.NumTableEntries())
	for i := 0; i < table.NumTableEntries(); i++ {
		require.Equal(t, table.SimplexVertices(i), got.SimplexVertices(i))
	}
}

func TestWriteReadRoundTripV1(t *testing.T) {
	table := buildRoundTripTable(t)

	var buf bytes.Buffer
	require.NoError(t, xit.Write(&buf, table, xit.WithVersion(xit.VersionV1), xit.WithCreationDate("2026-01-01")))

	got, err := xit.Read(&buf)
	require.NoError(t, err)

	// v1 carries neither tableType nor tableProperties, so the dimension
	// cross-check is all that recovers TableType, and Properties outside
	// Encoding/TableType stay at their zero values.
	require.Equal(t, mcprop.TableTypeIsosurface, got.Properties.TableType)
	require.Equal(t, table.Properties.Encoding, got.Properties.Encoding)
	require.Equal(t, table.NumTableEntries(), got.NumTableEntries())
	for i := 0; i < table.NumTableEntries(); i++ {
		require.Equal(t, table.SimplexVertices(i), got.SimplexVertices(i))
	}
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	doc := `<isotable>
<version> 9.9 </version>
<creationDate> 2026-01-01 </creationDate>
</isotable>`
	_, err := xit.Read(strings.NewReader(doc))
	require.Error(t, err)
}

func TestReadRejectsWrongPolytopeDimension(t *testing.T) {
	doc := `<isotable>
<version> 2.0 </version>
<creationDate> 2026-01-01 </creationDate>
<tableType> Isosurface </tableType>
<dimension> 2 2 </dimension>
</isotable>`
	_, err := xit.Read(strings.NewReader(doc))
	require.Error(t, err)
}

func TestReadRejectsNonNumericContent(t *testing.T) {
	doc := `<isotable>
<version> 2.0 </version>
<creationDate> 2026-01-01 </creationDate>
<tableType> Isosurface </tableType>
<dimension> three 2 </dimension>
</isotable>`
	_, err := xit.Read(strings.NewReader(doc))
	require.Error(t, err)
}

func TestDimensionCrossCheckOverwritesExplicitTableType(t *testing.T) {
	// tableType says IntervalVolume, but polyDim==3, simplexDim==2 means
	// simplexDim+1==polyDim, which the cross-check reads as Isosurface;
	// the cross-check always wins, matching the original reader.
	table := buildRoundTripTable(t)
	table.Properties.TableType = mcprop.TableTypeIntervalVolume

	var buf bytes.Buffer
	require.NoError(t, xit.Write(&buf, table, xit.WithCreationDate("2026-01-01")))

	got, err := xit.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, mcprop.TableTypeIsosurface, got.Properties.TableType)
}
