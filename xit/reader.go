package xit

import (
	"io"
	"strconv"
	"strings"

	"github.com/rafewenger/iso3D-sub000/isovertex"
	"github.com/rafewenger/iso3D-sub000/mcprop"
	"github.com/rafewenger/iso3D-sub000/mctable"
	"github.com/rafewenger/iso3D-sub000/polytope"
)

// polyDimensionAccepted is the only polytope dimension the reader
// accepts; spec.md §4.J: "The specified system only accepts
// polytopeDim == 3."
const polyDimensionAccepted = 3

// Read parses an XIT document from r, selecting the v1 or v2 element
// ordering from its <version> tag: "1"/"1.0" reads v1; "2"/"2.0"/any
// other "2.x" reads v2 (tolerant of point releases); any other version
// string fails.
func Read(r io.Reader) (*mctable.Table, error) {
	tz := newTokenizer(r)

	if err := tz.ExpectStart(elemIsotable); err != nil {
		return nil, err
	}
	if err := tz.ExpectStart(elemVersion); err != nil {
		return nil, err
	}
	verText, err := tz.ReadText()
	if err != nil {
		return nil, err
	}
	if err := tz.ExpectEnd(elemVersion); err != nil {
		return nil, err
	}

	if err := tz.ExpectStart(elemCreationDate); err != nil {
		return nil, err
	}
	if _, err := tz.ReadText(); err != nil {
		return nil, err
	}
	if err := tz.ExpectEnd(elemCreationDate); err != nil {
		return nil, err
	}

	switch classifyVersion(verText) {
	case versionV1:
		return readBody(tz, false)
	case versionV2:
		return readBody(tz, true)
	default:
		return nil, formatErr("unknown XIT version string", strconv.Quote(verText))
	}
}

type xitVersion int

const (
	versionUnknown xitVersion = iota
	versionV1
	versionV2
)

func classifyVersion(s string) xitVersion {
	switch strings.TrimSpace(s) {
	case "1", "1.0":
		return versionV1
	case "2", "2.0":
		return versionV2
	}
	if strings.HasPrefix(strings.TrimSpace(s), "2.") {
		return versionV2
	}
	return versionUnknown
}

// readBody parses everything after <creationDate>, in the v1 or v2
// element ordering spec.md §4.J describes.
func readBody(tz *tokenizer, isV2 bool) (*mctable.Table, error) {
	props := &mcprop.Properties{}

	if isV2 {
		if err := tz.ExpectStart(elemTableType); err != nil {
			return nil, err
		}
		typeText, err := tz.ReadText()
		if err != nil {
			return nil, err
		}
		if err := tz.ExpectEnd(elemTableType); err != nil {
			return nil, err
		}
		props.SetTableType(typeText)
	}

	if err := tz.ExpectStart(elemDimension); err != nil {
		return nil, err
	}
	dims, err := tz.ReadInts(2)
	if err != nil {
		return nil, err
	}
	if err := tz.ExpectEnd(elemDimension); err != nil {
		return nil, err
	}
	polyDim, simplexDim := dims[0], dims[1]
	if polyDim != polyDimensionAccepted {
		return nil, formatErr("polytope dimension", polyDim, "is not", polyDimensionAccepted)
	}
	// The dimension cross-check always wins over an explicit <tableType>,
	// matching the original reader's read_dimension.
	switch {
	case polyDim == simplexDim:
		props.TableType = mcprop.TableTypeIntervalVolume
	case polyDim == simplexDim+1:
		props.TableType = mcprop.TableTypeIsosurface
	}

	poly, err := readPoly(tz, polyDim, isV2)
	if err != nil {
		return nil, err
	}

	table := mctable.NewTable(poly, simplexDim)
	table.Properties = props

	if err := readIsoVertices(tz, table); err != nil {
		return nil, err
	}

	if err := tz.ExpectStart(elemTable); err != nil {
		return nil, err
	}
	if err := tz.ExpectStart(elemEncoding); err != nil {
		return nil, err
	}
	encText, err := tz.ReadText()
	if err != nil {
		return nil, err
	}
	if err := tz.ExpectEnd(elemEncoding); err != nil {
		return nil, err
	}
	table.Properties.SetEncoding(encText)

	if isV2 {
		if err := readTableProperties(tz, table); err != nil {
			return nil, err
		}
	}

	if err := readEntries(tz, table); err != nil {
		return nil, err
	}

	return table, nil
}

func readPoly(tz *tokenizer, polyDim int, isV2 bool) (*polytope.Polytope, error) {
	if err := tz.ExpectStart(elemPoly); err != nil {
		return nil, err
	}

	shape := polytope.ShapeUndefined
	if isV2 {
		if err := tz.ExpectStart(elemPolyShape); err != nil {
			return nil, err
		}
		shapeText, err := tz.ReadText()
		if err != nil {
			return nil, err
		}
		if err := tz.ExpectEnd(elemPolyShape); err != nil {
			return nil, err
		}
		shape = polytope.ShapeFromString(shapeText)
	}

	if err := tz.ExpectStart(elemVertices); err != nil {
		return nil, err
	}
	if err := tz.ExpectStart(elemNumVertices); err != nil {
		return nil, err
	}
	numV, err := tz.ReadInt()
	if err != nil {
		return nil, err
	}
	if err := tz.ExpectEnd(elemNumVertices); err != nil {
		return nil, err
	}
	coords := make([][]int, numV)
	for i := 0; i < numV; i++ {
		if err := tz.ExpectStart(elemC); err != nil {
			return nil, err
		}
		c, err := tz.ReadInts(polyDim)
		if err != nil {
			return nil, err
		}
		if err := tz.ExpectEnd(elemC); err != nil {
			return nil, err
		}
		coords[i] = c
	}
	if err := tz.ExpectEnd(elemVertices); err != nil {
		return nil, err
	}

	if err := tz.ExpectStart(elemEdges); err != nil {
		return nil, err
	}
	if err := tz.ExpectStart(elemNumEdges); err != nil {
		return nil, err
	}
	numE, err := tz.ReadInt()
	if err != nil {
		return nil, err
	}
	if err := tz.ExpectEnd(elemNumEdges); err != nil {
		return nil, err
	}
	edges := make([][2]int, numE)
	for i := 0; i < numE; i++ {
		if err := tz.ExpectStart(elemV); err != nil {
			return nil, err
		}
		ends, err := tz.ReadInts(2)
		if err != nil {
			return nil, err
		}
		if err := tz.ExpectEnd(elemV); err != nil {
			return nil, err
		}
		edges[i] = [2]int{ends[0], ends[1]}
	}
	if err := tz.ExpectEnd(elemEdges); err != nil {
		return nil, err
	}

	if err := tz.ExpectStart(elemFacets); err != nil {
		return nil, err
	}
	if err := tz.ExpectStart(elemNumFacets); err != nil {
		return nil, err
	}
	numF, err := tz.ReadInt()
	if err != nil {
		return nil, err
	}
	if err := tz.ExpectEnd(elemNumFacets); err != nil {
		return nil, err
	}
	facetVerts := make([][]int, numF)
	for i := 0; i < numF; i++ {
		if err := tz.ExpectStart(elemF); err != nil {
			return nil, err
		}
		all, err := tz.ReadAllInts()
		if err != nil {
			return nil, err
		}
		if err := tz.ExpectEnd(elemF); err != nil {
			return nil, err
		}
		if len(all) < 1 || len(all) != 1+all[0] {
			return nil, formatErr("facet", i, "vertex count does not match its vertex list")
		}
		facetVerts[i] = all[1:]
	}
	if err := tz.ExpectEnd(elemFacets); err != nil {
		return nil, err
	}

	if err := tz.ExpectEnd(elemPoly); err != nil {
		return nil, err
	}

	poly := polytope.NewPolytope(shape, polyDim)
	if err := poly.SetSize(numV, numE, numF); err != nil {
		return nil, formatErr("invalid polytope size", err)
	}
	for i, c := range coords {
		for d, v := range c {
			if err := poly.SetVertexCoord(i, d, v); err != nil {
				return nil, formatErr("polytope vertex", i, "coordinate", d, err)
			}
		}
	}
	for i, e := range edges {
		if err := poly.SetEdge(i, e[0], e[1]); err != nil {
			return nil, formatErr("polytope edge", i, err)
		}
	}
	for i, fv := range facetVerts {
		for k, v := range fv {
			if err := poly.SetFacetVertex(i, k, v); err != nil {
				return nil, formatErr("polytope facet", i, "vertex", k, err)
			}
		}
	}
	poly.ComputeIncidentEdges()
	return poly, nil
}

func readIsoVertices(tz *tokenizer, table *mctable.Table) error {
	if err := tz.ExpectStart(elemIsoVertices); err != nil {
		return err
	}
	if err := tz.ExpectStart(elemNumVertices); err != nil {
		return err
	}
	n, err := tz.ReadInt()
	if err != nil {
		return err
	}
	if err := tz.ExpectEnd(elemNumVertices); err != nil {
		return err
	}
	if err := table.SetNumIsosurfaceVertices(n); err != nil {
		return formatErr("invalid isosurface vertex count", err)
	}

	for w := 0; w < n; w++ {
		v, err := readIsoVertex(tz)
		if err != nil {
			return err
		}
		if err := table.SetIsosurfaceVertex(w, v); err != nil {
			return formatErr("isosurface vertex", w, err)
		}
	}

	if err := tz.ExpectEnd(elemIsoVertices); err != nil {
		return err
	}
	return nil
}

func readIsoVertex(tz *tokenizer) (isovertex.Vertex, error) {
	if err := tz.ExpectStart(elemW); err != nil {
		return isovertex.Vertex{}, err
	}

	name, err := tz.PeekStartName()
	if err != nil {
		return isovertex.Vertex{}, err
	}

	var v isovertex.Vertex
	switch name {
	case elemInV:
		if err := tz.ExpectStart(elemInV); err != nil {
			return v, err
		}
		idx, err := tz.ReadInt()
		if err != nil {
			return v, err
		}
		if err := tz.ExpectEnd(elemInV); err != nil {
			return v, err
		}
		v = isovertex.OnVertex(idx)
	case elemInE:
		if err := tz.ExpectStart(elemInE); err != nil {
			return v, err
		}
		idx, err := tz.ReadInt()
		if err != nil {
			return v, err
		}
		if err := tz.ExpectEnd(elemInE); err != nil {
			return v, err
		}
		v = isovertex.OnEdge(idx)
	case elemInF:
		if err := tz.ExpectStart(elemInF); err != nil {
			return v, err
		}
		idx, err := tz.ReadInt()
		if err != nil {
			return v, err
		}
		if err := tz.ExpectEnd(elemInF); err != nil {
			return v, err
		}
		v = isovertex.OnFacet(idx)
	case elemC:
		if err := tz.ExpectStart(elemC); err != nil {
			return v, err
		}
		c, err := tz.ReadInts(3)
		if err != nil {
			return v, err
		}
		if err := tz.ExpectEnd(elemC); err != nil {
			return v, err
		}
		v = isovertex.AtPoint(float64(c[0]), float64(c[1]), float64(c[2]))
	default:
		return v, formatErr("isosurface vertex: expected one of inV/inE/inF/c, found", name)
	}

	// An optional label may follow before </w>.
	next, err := tz.PeekStartName()
	if err != nil {
		return v, err
	}
	if next == elemL {
		if err := tz.ExpectStart(elemL); err != nil {
			return v, err
		}
		label, err := tz.ReadText()
		if err != nil {
			return v, err
		}
		if err := tz.ExpectEnd(elemL); err != nil {
			return v, err
		}
		v = v.WithLabel(label)
	}

	if err := tz.ExpectEnd(elemW); err != nil {
		return v, err
	}
	return v, nil
}

// readTableProperties reads tableProperties' children in whatever order
// they appear, matching the original reader's tolerance for field order.
func readTableProperties(tz *tokenizer, table *mctable.Table) error {
	if err := tz.ExpectStart(elemTableProperties); err != nil {
		return err
	}
	for {
		name, err := tz.PeekStartName()
		if err != nil {
			return err
		}
		if name == "" {
			break
		}
		if err := tz.ExpectStart(name); err != nil {
			return err
		}
		text, err := tz.ReadText()
		if err != nil {
			return err
		}
		if err := tz.ExpectEnd(name); err != nil {
			return err
		}
		switch name {
		case elemPolyVertexLabel:
			table.Properties.SetGridVertexLabel(text)
		case elemSeparationType:
			table.Properties.SetSeparation(text)
		case elemTriangulationType:
			table.Properties.SetTriangulation(text)
		case elemSeparateOpposite:
			table.Properties.SeparateOpposite = text == "true"
		case elemIsoPolyOrientation:
			table.Properties.SetOrientation(text)
		}
	}
	if err := tz.ExpectEnd(elemTableProperties); err != nil {
		return err
	}
	return nil
}

func readEntries(tz *tokenizer, table *mctable.Table) error {
	if err := tz.ExpectStart(elemNumEntries); err != nil {
		return err
	}
	n, err := tz.ReadInt()
	if err != nil {
		return err
	}
	if err := tz.ExpectEnd(elemNumEntries); err != nil {
		return err
	}
	if err := table.SetNumTableEntries(n); err != nil {
		return formatErr("invalid table entry count", err)
	}

	vertsPerSimplex := table.VertsPerSimplex()
	for i := 0; i < n; i++ {
		if err := tz.ExpectStart(elemS); err != nil {
			return err
		}
		all, err := tz.ReadAllInts()
		if err != nil {
			return err
		}
		if err := tz.ExpectEnd(elemS); err != nil {
			return err
		}
		if len(all) < 1 {
			return formatErr("table entry", i, "is missing its simplex count")
		}
		numSimplices := all[0]
		if len(all) != 1+numSimplices*vertsPerSimplex {
			return formatErr("table entry", i, "simplex-vertex count does not match its declared simplex count")
		}
		if err := table.SetSimplexVertices(i, all[1:], numSimplices); err != nil {
			return formatErr("table entry", i, err)
		}
	}

	if err := tz.ExpectEnd(elemTable); err != nil {
		return err
	}
	if err := tz.ExpectEnd(elemIsotable); err != nil {
		return err
	}
	return nil
}
