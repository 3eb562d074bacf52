// Package polytope models the finite abstract polytope that hosts a
// Marching Cubes table entry: vertices with even integer coordinates,
// edges, facets (both as explicit lists and as facet-vertex bitsets for
// O(1) membership), derived incident-edge lists, and an optional half-edge
// extension. GenCube3D builds the canonical 3D cube; GeneratePrism builds
// a simplex-prism over an existing base polytope.
//
// Grounded on iso3D_MCtable_poly.h/.cpp (field layout and setter contract)
// from the original source tree.
package polytope
