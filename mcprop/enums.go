package mcprop

import "github.com/rafewenger/iso3D-sub000/enumreg"

// TableType is the lookup_table_type axis.
type TableType int

const (
	TableTypeUndefined TableType = iota
	TableTypeIsosurface
	TableTypeIntervalVolume
)

var tableTypeRegistry = enumreg.New(TableTypeUndefined,
	enumreg.Entry[TableType]{Value: TableTypeIsosurface, Name: "ISOSURFACE"},
	enumreg.Entry[TableType]{Value: TableTypeIntervalVolume, Name: "INTERVAL_VOLUME"},
)

func (t TableType) String() string { return orUndefined(tableTypeRegistry.String(t)) }

// TableTypeFromString is a case-insensitive lookup.
func TableTypeFromString(s string) TableType { return tableTypeRegistry.EnumValue(s) }

// Encoding is the index-encoding axis: the base used to decompose a table
// index into per-polytope-vertex labels.
type Encoding int

const (
	EncodingUndefined Encoding = iota
	EncodingBinary
	EncodingBase3
	EncodingNonStandard
)

var encodingRegistry = enumreg.New(EncodingUndefined,
	enumreg.Entry[Encoding]{Value: EncodingBinary, Name: "BINARY"},
	enumreg.Entry[Encoding]{Value: EncodingBase3, Name: "BASE3"},
	enumreg.Entry[Encoding]{Value: EncodingNonStandard, Name: "NON_STANDARD"},
)

func (e Encoding) String() string { return orUndefined(encodingRegistry.String(e)) }

// EncodingFromString is a case-insensitive lookup.
func EncodingFromString(s string) Encoding { return encodingRegistry.EnumValue(s) }

// Base returns the numeric base this Encoding implies for index
// decomposition: 2 for binary, 3 otherwise (base3 and non-standard both
// decode ternary digits).
func (e Encoding) Base() int {
	if e == EncodingBinary {
		return 2
	}
	return 3
}

// GridVertexLabelType is the per-polytope-vertex label alphabet axis.
type GridVertexLabelType int

const (
	GridVertexLabelUndefined GridVertexLabelType = iota
	GridVertexLabelNegPos
	GridVertexLabelNegEqualsPos
	GridVertexLabelNegStarPos
)

var gridVertexLabelRegistry = enumreg.New(GridVertexLabelUndefined,
	enumreg.Entry[GridVertexLabelType]{Value: GridVertexLabelNegPos, Name: "NegPos"},
	enumreg.Entry[GridVertexLabelType]{Value: GridVertexLabelNegEqualsPos, Name: "NegEqualsPos"},
	enumreg.Entry[GridVertexLabelType]{Value: GridVertexLabelNegStarPos, Name: "NegStarPos"},
)

func (g GridVertexLabelType) String() string { return orUndefined(gridVertexLabelRegistry.String(g)) }

// GridVertexLabelFromString is a case-insensitive lookup.
func GridVertexLabelFromString(s string) GridVertexLabelType {
	return gridVertexLabelRegistry.EnumValue(s)
}

// TriangulationType is the isosurface_triangulation_type axis.
type TriangulationType int

const (
	TriangulationUndefined TriangulationType = iota
	TriangulationConvexHull
	TriangulationEdgeGroups
)

var triangulationRegistry = enumreg.New(TriangulationUndefined,
	enumreg.Entry[TriangulationType]{Value: TriangulationConvexHull, Name: "ConvexHull"},
	enumreg.Entry[TriangulationType]{Value: TriangulationEdgeGroups, Name: "EdgeGroups"},
)

func (t TriangulationType) String() string { return orUndefined(triangulationRegistry.String(t)) }

// TriangulationFromString is a case-insensitive lookup.
func TriangulationFromString(s string) TriangulationType {
	return triangulationRegistry.EnumValue(s)
}

// SeparationType is the isosurface_separation_type axis.
type SeparationType int

const (
	SeparationUndefined SeparationType = iota
	SeparateNegative
	SeparatePositive
)

var separationRegistry = enumreg.New(SeparationUndefined,
	enumreg.Entry[SeparationType]{Value: SeparateNegative, Name: "SeparateNeg"},
	enumreg.Entry[SeparationType]{Value: SeparatePositive, Name: "SeparatePos"},
)

func (s SeparationType) String() string { return orUndefined(separationRegistry.String(s)) }

// SeparationFromString is a case-insensitive lookup.
func SeparationFromString(s string) SeparationType { return separationRegistry.EnumValue(s) }

// Opposite returns SeparatePositive for SeparateNegative and vice versa;
// every other value (including Undefined) is returned unchanged, since
// only the {neg,pos} pair has a defined opposite.
func (s SeparationType) Opposite() SeparationType {
	switch s {
	case SeparateNegative:
		return SeparatePositive
	case SeparatePositive:
		return SeparateNegative
	default:
		return s
	}
}

// Orientation is the iso_poly_orientation axis.
type Orientation int

const (
	OrientationUndefined Orientation = iota
	PositiveOrient
	NegativeOrient
	NoOrient
)

var orientationRegistry = enumreg.New(OrientationUndefined,
	enumreg.Entry[Orientation]{Value: PositiveOrient, Name: "PositiveOrient"},
	enumreg.Entry[Orientation]{Value: NegativeOrient, Name: "NegativeOrient"},
	enumreg.Entry[Orientation]{Value: NoOrient, Name: "NoOrient"},
)

func (o Orientation) String() string { return orUndefined(orientationRegistry.String(o)) }

// OrientationFromString is a case-insensitive lookup.
func OrientationFromString(s string) Orientation { return orientationRegistry.EnumValue(s) }

// Opposite returns NegativeOrient for PositiveOrient and vice versa; every
// other value (including NoOrient and Undefined) is returned unchanged.
func (o Orientation) Opposite() Orientation {
	switch o {
	case PositiveOrient:
		return NegativeOrient
	case NegativeOrient:
		return PositiveOrient
	default:
		return o
	}
}

func orUndefined(s string) string {
	if s == "" {
		return "Undefined"
	}
	return s
}
