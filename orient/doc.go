// Package orient implements the orientation engine: per-entry orientation
// metadata built from a mctable.Table, local per-entry orientation via
// simplex.OrientAllSimplices, and the cross-entry propagation algorithm
// that makes the whole table's simplex orientations globally consistent
// across every pair of entries sharing a boundary facet.
//
// Grounded on iso3D_MCtable_orient.h/.cpp: OrientAllSimplicesInTableEntry,
// the stackI/stackMulti propagation loop, and OrientTwoTableEntries's
// facet-label-agreement test via AreAllFacetVertexLabelsIdentical.
package orient
