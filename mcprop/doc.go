// Package mcprop implements the Marching Cubes table property record: the
// seven-field property bundle (table type, index encoding, grid-vertex
// label alphabet, triangulation style, separation side, orientation, and
// the separate-opposite flag) plus field-by-field Check, Copy, and the two
// opposite operations the subsystem needs (separation and orientation).
//
// Grounded on iso3D_MCtable_properties.h's MC_TABLE_PROPERTIES class: the
// same enum domains, one "Undefined" sentinel per enum axis (there is no
// separate "unknown" value), and the same selective-match Check semantics.
package mcprop
