// Package simplex implements the pure simplex-algebra operations the
// orientation engine is built from: facet canonicalization and swap
// parity, facet/vertex sharing tests, boundary-facet detection, local
// depth-first orientation of a simplex list, and facet- or
// vertex-connected components via union-find.
//
// None of these functions know about tables or entries; they operate
// directly on simplex-vertex index lists (one []int per simplex), matching the original
// iso3D_simplex.h free-function design.
package simplex
