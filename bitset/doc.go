// Package bitset implements a fixed-width bit set whose width is chosen at
// construction. The lookup-table subsystem sizes its sets by a polytope's
// vertex count (bounded by polytope.MaxVertices) or a table's isosurface
// vertex count (bounded by mctable.MaxIsosurfaceVertices); the package
// itself imposes no ceiling. It is the word-sliced, popcount-driven technique used
// by gaissmai-bart's internal bitset, reimplemented here as a standalone,
// importable package since the original is unexported.
package bitset
