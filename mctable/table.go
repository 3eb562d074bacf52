package mctable

import (
	"sort"

	"github.com/rafewenger/iso3D-sub000/errreport"
	"github.com/rafewenger/iso3D-sub000/isovertex"
	"github.com/rafewenger/iso3D-sub000/mcprop"
	"github.com/rafewenger/iso3D-sub000/polytope"
)

// MaxIsosurfaceVertices is the implementation ceiling on the number of
// isosurface vertices a single table may hold; it bounds the orientation
// engine's per-simplex bitsets.
const MaxIsosurfaceVertices = 4096

// Table is the indexed collection of per-entry simplex lists. It owns
// exactly one Polytope, one isosurface-vertex array, one Properties
// record, and N entries, N = Properties.Encoding.Base() ^ NumPolyVertices.
//
// A table is created empty, sized, populated entry by entry, has its
// properties set, optionally has the orientation engine run, and is then
// logically immutable for downstream readers.
type Table struct {
	Poly       *polytope.Polytope
	Properties *mcprop.Properties

	simplexDim int // 2 for triangles (isosurface), 3 for tetrahedra (interval volume)

	isoVerts []isovertex.Vertex
	entries  []Entry
}

// NewTable returns an empty Table over poly with the given simplex
// dimension (2 for isosurface tables, 3 for interval-volume tables).
func NewTable(poly *polytope.Polytope, simplexDim int) *Table {
	return &Table{Poly: poly, Properties: &mcprop.Properties{}, simplexDim: simplexDim}
}

// SimplexDimension returns the simplex dimension (2 or 3).
func (t *Table) SimplexDimension() int { return t.simplexDim }

// VertsPerSimplex returns simplexDim+1, the number of isosurface-vertex
// indices stored per simplex.
func (t *Table) VertsPerSimplex() int { return t.simplexDim + 1 }

// Base returns 2 when Properties.Encoding is binary, 3 otherwise.
func (t *Table) Base() int { return t.Properties.Encoding.Base() }

// NegativeLabelValue is always 0.
func (t *Table) NegativeLabelValue() int { return 0 }

// PositiveLabelValue is 2 for base-3 encodings, 1 for binary.
func (t *Table) PositiveLabelValue() int {
	if t.Base() == 3 {
		return 2
	}
	return 1
}

// NumPolyVertices returns the owned polytope's vertex count.
func (t *Table) NumPolyVertices() int { return t.Poly.NumVertices() }

// NumIsosurfaceVertices returns the size of the isosurface-vertex array.
func (t *Table) NumIsosurfaceVertices() int { return len(t.isoVerts) }

// NumTableEntries returns the number of allocated entries.
func (t *Table) NumTableEntries() int { return len(t.entries) }

// SetNumIsosurfaceVertices allocates the isosurface-vertex array to size n.
// It returns an error if n is negative or exceeds MaxIsosurfaceVertices.
func (t *Table) SetNumIsosurfaceVertices(n int) error {
	if n < 0 {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetNumIsosurfaceVertices",
			"negative count", n)
	}
	if n > MaxIsosurfaceVertices {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetNumIsosurfaceVertices",
			"count", n, "exceeds MaxIsosurfaceVertices", MaxIsosurfaceVertices)
	}
	t.isoVerts = make([]isovertex.Vertex, n)
	return nil
}

// SetIsosurfaceVertex stores v at isosurface-vertex slot i.
func (t *Table) SetIsosurfaceVertex(i int, v isovertex.Vertex) error {
	if i < 0 || i >= len(t.isoVerts) {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetIsosurfaceVertex",
			"index", i, "out of range")
	}
	t.isoVerts[i] = v
	return nil
}

// IsosurfaceVertex returns isosurface-vertex slot i.
func (t *Table) IsosurfaceVertex(i int) isovertex.Vertex { return t.isoVerts[i] }

// SetNumTableEntries allocates N entry slots. N would ordinarily be
// Base()^NumPolyVertices, but the caller supplies N explicitly since test
// tables may use a smaller N for focused scenarios.
func (t *Table) SetNumTableEntries(n int) error {
	if n < 0 {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetNumTableEntries",
			"negative count", n)
	}
	t.entries = make([]Entry, n)
	return nil
}

// SetNumSimplices (re)allocates entry i's simplex-vertex array to hold k
// simplices. k == 0 is legal and frees the entry's storage. Negative k is
// a programming failure.
func (t *Table) SetNumSimplices(i, k int) error {
	if i < 0 || i >= len(t.entries) {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetNumSimplices",
			"entry index", i, "out of range")
	}
	if k < 0 {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetNumSimplices",
			"negative simplex count", k)
	}
	t.entries[i].setNumSimplices(k, t.VertsPerSimplex())
	return nil
}

// NumSimplices returns the number of simplices in entry i.
func (t *Table) NumSimplices(i int) int { return t.entries[i].numSimplices }

// SetSimplexVertex stores isosurface-vertex index iv at slot k of simplex s
// of entry i.
func (t *Table) SetSimplexVertex(i, s, k, iv int) error {
	e := &t.entries[i]
	pos := s*t.VertsPerSimplex() + k
	if pos < 0 || pos >= len(e.verts) {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetSimplexVertex",
			"entry", i, "simplex", s, "slot", k, "out of range")
	}
	e.verts[pos] = iv
	return nil
}

// SetSimplexVertices bulk-stores k simplices worth of isosurface-vertex
// indices into entry i, starting at simplex 0. len(arr) must equal
// k*VertsPerSimplex().
func (t *Table) SetSimplexVertices(i int, arr []int, k int) error {
	if err := t.SetNumSimplices(i, k); err != nil {
		return err
	}
	if len(arr) != k*t.VertsPerSimplex() {
		return errreport.Procedure(errreport.KindIllegalArgument, "Table.SetSimplexVertices",
			"entry", i, "array length", len(arr), "expected", k*t.VertsPerSimplex())
	}
	copy(t.entries[i].verts, arr)
	return nil
}

// SimplexVertex reads slot k of simplex s of entry i.
func (t *Table) SimplexVertex(i, s, k int) int {
	return t.entries[i].verts[s*t.VertsPerSimplex()+k]
}

// SimplexVertices returns entry i's full flattened isosurface-vertex array.
func (t *Table) SimplexVertices(i int) []int {
	return t.entries[i].verts
}

// SimplexVerticesOf returns the isosurface-vertex slice for simplex s of
// entry i only.
func (t *Table) SimplexVerticesOf(i, s int) []int {
	vps := t.VertsPerSimplex()
	return t.entries[i].verts[s*vps : (s+1)*vps]
}

// StorePolyVerticesAsIsoVertices fills NumPolyVertices consecutive
// isosurface-vertex slots, starting at vstart, with host-polytope-vertex
// references.
func (t *Table) StorePolyVerticesAsIsoVertices(vstart int) error {
	for v := 0; v < t.NumPolyVertices(); v++ {
		if err := t.SetIsosurfaceVertex(vstart+v, isovertex.OnVertex(v)); err != nil {
			return err
		}
	}
	return nil
}

// StorePolyEdgesAsIsoVertices fills NumEdges consecutive isosurface-vertex
// slots, starting at vstart, with host-polytope-edge references.
func (t *Table) StorePolyEdgesAsIsoVertices(vstart int) error {
	for e := 0; e < t.Poly.NumEdges(); e++ {
		if err := t.SetIsosurfaceVertex(vstart+e, isovertex.OnEdge(e)); err != nil {
			return err
		}
	}
	return nil
}

// StorePolyFacetsAsIsoVertices fills NumFacets consecutive isosurface-vertex
// slots, starting at vstart, with host-polytope-facet references.
func (t *Table) StorePolyFacetsAsIsoVertices(vstart int) error {
	for f := 0; f < t.Poly.NumFacets(); f++ {
		if err := t.SetIsosurfaceVertex(vstart+f, isovertex.OnFacet(f)); err != nil {
			return err
		}
	}
	return nil
}

// FlipIsoPolyOrientation swaps the last two vertices of simplex s of entry
// i, flipping its orientation. It is a no-op (but not an error) on a
// simplex too small to have two distinct trailing slots.
func (t *Table) FlipIsoPolyOrientation(i, s int) {
	verts := t.SimplexVerticesOf(i, s)
	n := len(verts)
	if n < 2 {
		return
	}
	verts[n-1], verts[n-2] = verts[n-2], verts[n-1]
}

// FlipAllIsoPolyOrientations flips every simplex of entry i.
func (t *Table) FlipAllIsoPolyOrientations(i int) {
	for s := 0; s < t.NumSimplices(i); s++ {
		t.FlipIsoPolyOrientation(i, s)
	}
}

// FlipAllIsoPolyOrientationsTable flips every simplex of every entry and
// toggles the table's orientation property to its opposite.
func (t *Table) FlipAllIsoPolyOrientationsTable() {
	for i := range t.entries {
		t.FlipAllIsoPolyOrientations(i)
	}
	t.Properties.Orientation = t.Properties.Orientation.Opposite()
}

// SortSimplexVertices sorts simplex s of entry i ascending. Calling it
// twice is idempotent.
func (t *Table) SortSimplexVertices(i, s int) {
	sort.Ints(t.SimplexVerticesOf(i, s))
}

// DecodeLabels decomposes table index i in base Base() across
// NumPolyVertices digits: digit v is (i / Base()^v) % Base(), so the digit
// at the highest polytope vertex is the highest-order digit.
func (t *Table) DecodeLabels(i int) []int {
	base := t.Base()
	n := t.NumPolyVertices()
	digits := make([]int, n)
	for v := 0; v < n; v++ {
		digits[v] = i % base
		i /= base
	}
	return digits
}

// AreAllFacetVertexLabelsIdentical decodes both table indices iA and iB
// into per-vertex digit arrays and reports whether the digits agree on
// every vertex of polytope facet f.
func (t *Table) AreAllFacetVertexLabelsIdentical(iA, iB, f int) bool {
	labelsA := t.DecodeLabels(iA)
	labelsB := t.DecodeLabels(iB)
	for _, v := range t.Poly.FacetVertices(f) {
		if labelsA[v] != labelsB[v] {
			return false
		}
	}
	return true
}

// Check validates the polytope, then every entry (non-negative simplex
// count, storage allocated when non-empty), then every simplex-vertex
// index against the isosurface-vertex range.
func (t *Table) Check() error {
	if err := t.Poly.Check(); err != nil {
		return err
	}
	for i := range t.entries {
		e := &t.entries[i]
		if e.numSimplices < 0 {
			return errreport.Procedure(errreport.KindInvariantViolation, "Table.Check",
				"entry", i, "has negative simplex count")
		}
		if e.numSimplices > 0 && e.verts == nil {
			return errreport.Procedure(errreport.KindInvariantViolation, "Table.Check",
				"entry", i, "has simplices but no storage")
		}
		for _, iv := range e.verts {
			if iv < 0 || iv >= len(t.isoVerts) {
				return errreport.Procedure(errreport.KindConsistencyError, "Table.Check",
					"entry", i, "simplex-vertex index", iv, "out of range")
			}
		}
	}
	return nil
}
