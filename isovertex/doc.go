// Package isovertex implements the isosurface vertex descriptor: a
// polymorphic value naming an isosurface mesh vertex by the host polytope
// feature it lies on (vertex, edge, or facet) or by an explicit coordinate,
// plus an optional string label carried with the original SET_VALUE /
// BOOLEAN_SET_VALUE pattern (a value paired with an is-set flag, so an
// unset label is distinguishable from an explicitly empty one).
package isovertex
