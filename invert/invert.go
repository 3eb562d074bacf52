package invert

import (
	"github.com/rafewenger/iso3D-sub000/mctable"
)

// Invert returns the complement of a: a fresh table sharing a's polytope,
// with a copy of a's isosurface-vertex array and the same simplex
// dimension, with the separation
// type and orientation flipped to their opposites, and entry i holding
// a's entry (N-1-i) for every i. a is validated with Check first; every
// error after that point would indicate an internal inconsistency
// between a table that passed Check and its own entry count, so those
// are treated as unreachable.
func Invert(a *mctable.Table) (*mctable.Table, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}

	b := mctable.NewTable(a.Poly, a.SimplexDimension())
	b.Properties = a.Properties.Copy()
	b.Properties.FlipSeparationAndOrientation()

	mustf(b.SetNumIsosurfaceVertices(a.NumIsosurfaceVertices()))
	for w := 0; w < a.NumIsosurfaceVertices(); w++ {
		mustf(b.SetIsosurfaceVertex(w, a.IsosurfaceVertex(w)))
	}

	n := a.NumTableEntries()
	mustf(b.SetNumTableEntries(n))
	for i := 0; i < n; i++ {
		src := n - 1 - i
		k := a.NumSimplices(src)
		verts := append([]int(nil), a.SimplexVertices(src)...)
		mustf(b.SetSimplexVertices(i, verts, k))
	}

	return b, nil
}

func mustf(err error) {
	if err != nil {
		panic("invert: " + err.Error())
	}
}
