package orient

import (
	"github.com/rafewenger/iso3D-sub000/bitset"
	"github.com/rafewenger/iso3D-sub000/isovertex"
	"github.com/rafewenger/iso3D-sub000/mctable"
	"github.com/rafewenger/iso3D-sub000/simplex"
)

// EntryMetadata is the orientation metadata built from one table entry:
// per-simplex bitsets over isosurface-vertex indices, plus the entry's
// facet-connected-component structure.
type EntryMetadata struct {
	InSimplex         []*bitset.Set // [s] -> bitset of isosurface vertices in simplex s
	IsBoundaryFacet   []*bitset.Set // [s] -> bit w set iff removing w yields a boundary facet
	FacetSwapParity   []*bitset.Set // [s] -> bit w set iff that facet's canonicalization parity is 1
	ComponentOf       []int         // [s] -> facet-connected component index
	NumComponents     int
	ComponentOriented *bitset.Set // bit c set iff component c is globally oriented
}

// simplexList returns entry i's simplices as independent [][]int views into
// the table's own storage (mutating an element of list[s] mutates the
// table), for feeding to the simplex package's pure functions.
func simplexList(table *mctable.Table, i int) [][]int {
	n := table.NumSimplices(i)
	list := make([][]int, n)
	for s := 0; s < n; s++ {
		list[s] = table.SimplexVerticesOf(i, s)
	}
	return list
}

// buildEntryMetadata computes fresh orientation metadata for entry i of
// table, including its facet-connected components.
func buildEntryMetadata(table *mctable.Table, i int) *EntryMetadata {
	list := simplexList(table, i)
	n := len(list)
	nIso := table.NumIsosurfaceVertices()

	componentOf, numComponents := simplex.FacetConnectedComponents(list)

	meta := &EntryMetadata{
		InSimplex:         make([]*bitset.Set, n),
		IsBoundaryFacet:   make([]*bitset.Set, n),
		FacetSwapParity:   make([]*bitset.Set, n),
		ComponentOf:       componentOf,
		NumComponents:     numComponents,
		ComponentOriented: bitset.New(maxInt(numComponents, 1)),
	}
	recomputePerSimplexBits(meta, list, nIso)
	return meta
}

// recomputePerSimplexBits (re)computes InSimplex, IsBoundaryFacet, and
// FacetSwapParity for every simplex in list. Called once at metadata
// construction, and again after a flip changes facet_swap_parity for the
// simplices it touched.
func recomputePerSimplexBits(meta *EntryMetadata, list [][]int, nIso int) {
	for s, verts := range list {
		in := bitset.New(nIso)
		for _, w := range verts {
			in.Set(w)
		}
		meta.InSimplex[s] = in

		isBoundary := bitset.New(nIso)
		parity := bitset.New(nIso)
		for iloc, w := range verts {
			if simplex.IsFacetABoundaryFacet(list, s, iloc) {
				isBoundary.Set(w)
			}
			_, p := simplex.SortFacetVertices(verts, iloc)
			if p == 1 {
				parity.Set(w)
			}
		}
		meta.IsBoundaryFacet[s] = isBoundary
		meta.FacetSwapParity[s] = parity
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// HasBoundaryFacet reports whether any simplex in the entry has at least
// one boundary facet.
func (m *EntryMetadata) HasBoundaryFacet() bool {
	for _, bs := range m.IsBoundaryFacet {
		if !bs.IsZero() {
			return true
		}
	}
	return false
}

// IsFullyOriented reports whether every component index below
// NumComponents has its ComponentOriented bit set.
func (m *EntryMetadata) IsFullyOriented() bool {
	for c := 0; c < m.NumComponents; c++ {
		if !m.ComponentOriented.Test(c) {
			return false
		}
	}
	return true
}

// facetMembership computes, for polytope facet f, the bitset over
// isosurface-vertex indices of every isosurface vertex that lies on f: an
// OnVertex/OnEdge vertex lies on f iff its host polytope feature's vertices
// are all members of f; an OnFacet vertex lies on f iff its index is f
// itself. AtPoint vertices carry no host-feature membership and are never
// considered to lie on any facet.
func facetMembership(table *mctable.Table, f int) *bitset.Set {
	poly := table.Poly
	members := poly.FacetMembers(f)
	out := bitset.New(table.NumIsosurfaceVertices())
	for w := 0; w < table.NumIsosurfaceVertices(); w++ {
		v := table.IsosurfaceVertex(w)
		switch v.Kind() {
		case isovertex.KindOnVertex:
			if members.Test(v.Index()) {
				out.Set(w)
			}
		case isovertex.KindOnEdge:
			e := v.Index()
			if members.Test(poly.EdgeEndpoint(e, 0)) && members.Test(poly.EdgeEndpoint(e, 1)) {
				out.Set(w)
			}
		case isovertex.KindOnFacet:
			if v.Index() == f {
				out.Set(w)
			}
		}
	}
	return out
}
