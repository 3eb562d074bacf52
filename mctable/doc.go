// Package mctable implements the Marching Cubes lookup table itself: the
// indexed collection of per-entry simplex lists, owning exactly one
// polytope, one isosurface-vertex array, one property record, and N
// entries where N = base^numPolyVertices.
//
// Grounded on iso3D_MCtable.h's MC_TABLE contract (SetNumTableEntries,
// SetNumSimplices, SetSimplexVertex(s), the Store*AsIsoVertices family, the
// Flip*/Sort* mutators, and AreAllFacetVertexLabelsIdentical).
package mctable
