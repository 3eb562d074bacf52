// Package iso3D is a toolkit for building, checking, orienting, and
// exchanging Marching-Cubes-family isosurface lookup tables.
//
// The table itself (mctable.Table) pairs a host polytope (polytope.Polytope
// — a cube, simplex, pyramid, or simplex prism) with one Entry per labeling
// of the polytope's vertices; each Entry holds the simplices the labeling
// should contribute to the isosurface. Table entries reference isosurface
// vertices (isovertex.Vertex) that live on the host polytope's vertices,
// edges, facets, or at an explicit point, and the table's global properties
// (mcprop.Properties) record the table/encoding/triangulation/separation/
// orientation axes that give those entries their meaning.
//
// Three independent subsystems operate on a built table:
//
//	simplex/ — pure simplex-algebra and union-find primitives: canonicalize
//	           a simplex's facets, test facet/vertex sharing, and partition
//	           a simplicial complex into facet- or vertex-connected
//	           components.
//	orient/  — propagates a single seed orientation choice across every
//	           table entry via cross-entry facet matching, then verifies
//	           the result is globally consistent.
//	invert/  — builds the complementary table (negative and positive grid
//	           labels swapped) by re-indexing entries and flipping the
//	           separation/orientation properties, sharing the same
//	           polytope.
//
// The xit/ package reads and writes tables in the XIT XML interchange
// format, in both its legacy (v1) and current (v2) element orderings.
//
// bitset/, errreport/, and enumreg/ are small foundational packages the
// rest of the module builds on: fixed-width bitsets for facet/simplex
// membership tests, a uniform error-report type distinguishing illegal
// arguments from format errors from consistency violations, and a generic
// closed-enum registry backing every property axis's string conversions.
package iso3D
