package xit

// Element names, exactly as spec.md's §4.J alphabet names them, kept
// here as named constants instead of scattered string literals so the
// reader/writer can't drift from the wire vocabulary by a typo.
const (
	elemIsotable           = "isotable"
	elemVersion            = "version"
	elemCreationDate       = "creationDate"
	elemTableType          = "tableType"
	elemDimension          = "dimension"
	elemPoly               = "poly"
	elemPolyShape          = "polyShape"
	elemVertices           = "vertices"
	elemNumVertices        = "numVertices"
	elemC                  = "c"
	elemEdges              = "edges"
	elemNumEdges           = "numEdges"
	elemV                  = "v"
	elemW                  = "w"
	elemFacets             = "facets"
	elemNumFacets          = "numFacets"
	elemF                  = "f"
	elemIsoVertices        = "isoVertices"
	elemInE                = "inE"
	elemInV                = "inV"
	elemInF                = "inF"
	elemL                  = "L"
	elemTable              = "table"
	elemEncoding           = "encoding"
	elemTableProperties    = "tableProperties"
	elemPolyVertexLabel    = "polyVertexLabelType"
	elemSeparationType     = "separationType"
	elemTriangulationType  = "triangulationType"
	elemSeparateOpposite   = "separateOpposite"
	elemIsoPolyOrientation = "isoPolyOrientation"
	elemNumEntries         = "numEntries"
	elemS                  = "s"
)
