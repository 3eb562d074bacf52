package mcprop

import "github.com/rafewenger/iso3D-sub000/errreport"

// Properties is the plain aggregate of the seven property axes that
// determine the semantics of every table entry.
type Properties struct {
	TableType         TableType
	Encoding          Encoding
	GridVertexLabel   GridVertexLabelType
	Triangulation     TriangulationType
	Separation        SeparationType
	Orientation       Orientation
	SeparateOpposite  bool
}

// SetTableType sets the table type from its string name.
func (p *Properties) SetTableType(s string) { p.TableType = TableTypeFromString(s) }

// SetEncoding sets the encoding from its string name.
func (p *Properties) SetEncoding(s string) { p.Encoding = EncodingFromString(s) }

// SetGridVertexLabel sets the grid-vertex label type from its string name.
func (p *Properties) SetGridVertexLabel(s string) { p.GridVertexLabel = GridVertexLabelFromString(s) }

// SetTriangulation sets the triangulation type from its string name.
func (p *Properties) SetTriangulation(s string) { p.Triangulation = TriangulationFromString(s) }

// SetSeparation sets the separation type from its string name.
func (p *Properties) SetSeparation(s string) { p.Separation = SeparationFromString(s) }

// SetOrientation sets the orientation from its string name.
func (p *Properties) SetOrientation(s string) { p.Orientation = OrientationFromString(s) }

// OppositeSeparationType returns the opposite of the current separation type.
func (p *Properties) OppositeSeparationType() SeparationType { return p.Separation.Opposite() }

// OppositeIsoPolyOrientation returns the opposite of the current orientation.
func (p *Properties) OppositeIsoPolyOrientation() Orientation { return p.Orientation.Opposite() }

// FlipSeparationAndOrientation replaces Separation and Orientation with
// their opposites in place; used by the inverter.
func (p *Properties) FlipSeparationAndOrientation() {
	p.Separation = p.Separation.Opposite()
	p.Orientation = p.Orientation.Opposite()
}

// Copy returns an independent copy of p.
func (p *Properties) Copy() *Properties {
	cp := *p
	return &cp
}

// Check compares p field by field against expected, except that any
// Undefined enum value in expected matches anything and is skipped
// (SeparateOpposite, a bool, is always compared). It
// returns a Report naming every mismatched axis, actual, and expected value,
// or nil if every checked axis matched.
func (p *Properties) Check(expected *Properties) error {
	var rep *errreport.Report
	mismatch := func(axis string, actual, want fmtStringer) {
		if rep == nil {
			rep = errreport.New(errreport.KindConsistencyError)
		}
		rep.Add(axis, "mismatch: actual", actual.String(), "expected", want.String())
	}

	if expected.TableType != TableTypeUndefined && expected.TableType != p.TableType {
		mismatch("lookup_table_type", p.TableType, expected.TableType)
	}
	if expected.Encoding != EncodingUndefined && expected.Encoding != p.Encoding {
		mismatch("encoding", p.Encoding, expected.Encoding)
	}
	if expected.GridVertexLabel != GridVertexLabelUndefined && expected.GridVertexLabel != p.GridVertexLabel {
		mismatch("grid_vertex_label_type", p.GridVertexLabel, expected.GridVertexLabel)
	}
	if expected.Triangulation != TriangulationUndefined && expected.Triangulation != p.Triangulation {
		mismatch("isosurface_triangulation_type", p.Triangulation, expected.Triangulation)
	}
	if expected.Separation != SeparationUndefined && expected.Separation != p.Separation {
		mismatch("isosurface_separation_type", p.Separation, expected.Separation)
	}
	if expected.Orientation != OrientationUndefined && expected.Orientation != p.Orientation {
		mismatch("iso_poly_orientation", p.Orientation, expected.Orientation)
	}
	if expected.SeparateOpposite != p.SeparateOpposite {
		rep2 := rep
		if rep2 == nil {
			rep2 = errreport.New(errreport.KindConsistencyError)
			rep = rep2
		}
		rep.Add("separate_opposite", "mismatch: actual", p.SeparateOpposite, "expected", expected.SeparateOpposite)
	}

	if rep == nil {
		return nil
	}
	return rep
}

type fmtStringer interface {
	String() string
}
