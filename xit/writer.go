package xit

import (
	"fmt"
	"io"

	"github.com/rafewenger/iso3D-sub000/isovertex"
	"github.com/rafewenger/iso3D-sub000/mctable"
)

// xmlWriter is a sticky-error stream writer: once a Fprintf fails every
// later call becomes a no-op, so the write* functions below never need
// to check or propagate an error themselves. Mirrors the original
// writer's unchecked ostream << chaining, translated to Go's explicit
// error model at exactly one point (Write's final return).
type xmlWriter struct {
	w   io.Writer
	err error
}

func (xw *xmlWriter) printf(format string, args ...interface{}) {
	if xw.err != nil {
		return
	}
	_, xw.err = fmt.Fprintf(xw.w, format, args...)
}

// Write serializes table as an XIT document to w, in the v2 element
// ordering unless WithVersion(VersionV1) is given.
func Write(w io.Writer, table *mctable.Table, opts ...Option) error {
	cfg := newWriteConfig(opts...)
	xw := &xmlWriter{w: w}

	versionStr := "2.0"
	if cfg.version == VersionV1 {
		versionStr = "1.0"
	}

	xw.printf("<?xml version=\"1.0\"?>\n")
	xw.printf("<%s>\n", elemIsotable)
	xw.printf("<!-- Isosurface lookup table -->\n")
	xw.printf("<%s> %s </%s>\n", elemVersion, versionStr, elemVersion)
	xw.printf("<%s> %s </%s>\n", elemCreationDate, cfg.creationDate, elemCreationDate)

	if cfg.version == VersionV2 {
		xw.printf("<%s> %s </%s>\n", elemTableType, table.Properties.TableType.String(), elemTableType)
	}

	xw.printf("<%s> %d  %d </%s>\n", elemDimension, table.Poly.Dimension(), table.SimplexDimension(), elemDimension)

	writePoly(xw, table, cfg.version == VersionV2)
	writeIsoVertices(xw, table)

	xw.printf("<%s>\n", elemTable)
	xw.printf("<%s> %s </%s>\n", elemEncoding, table.Properties.Encoding.String(), elemEncoding)
	if cfg.version == VersionV2 {
		writeTableProperties(xw, table)
	}
	writeEntries(xw, table)
	xw.printf("</%s>\n", elemTable)

	xw.printf("</%s>\n", elemIsotable)

	return xw.err
}

func writePoly(xw *xmlWriter, table *mctable.Table, writeShape bool) {
	poly := table.Poly
	xw.printf("<%s>\n", elemPoly)
	if writeShape {
		xw.printf("<%s> %s </%s>\n", elemPolyShape, poly.Shape().String(), elemPolyShape)
	}

	xw.printf("<%s>\n<%s> %d </%s>\n", elemVertices, elemNumVertices, poly.NumVertices(), elemNumVertices)
	for i := 0; i < poly.NumVertices(); i++ {
		xw.printf("<%s>", elemC)
		for d := 0; d < poly.Dimension(); d++ {
			xw.printf(" %d", poly.VertexCoord(i, d))
		}
		xw.printf(" </%s>\n", elemC)
	}
	xw.printf("</%s>\n", elemVertices)

	xw.printf("<%s>\n<%s> %d </%s>\n", elemEdges, elemNumEdges, poly.NumEdges(), elemNumEdges)
	for i := 0; i < poly.NumEdges(); i++ {
		xw.printf("<%s> %d %d </%s>\n", elemV, poly.EdgeEndpoint(i, 0), poly.EdgeEndpoint(i, 1), elemV)
	}
	xw.printf("</%s>\n", elemEdges)

	xw.printf("<%s>\n<%s> %d </%s>\n", elemFacets, elemNumFacets, poly.NumFacets(), elemNumFacets)
	for i := 0; i < poly.NumFacets(); i++ {
		verts := poly.FacetVertices(i)
		xw.printf("<%s> %d", elemF, len(verts))
		for _, v := range verts {
			xw.printf(" %d", v)
		}
		xw.printf(" </%s>\n", elemF)
	}
	xw.printf("</%s>\n", elemFacets)

	xw.printf("</%s>\n", elemPoly)
}

func writeIsoVertices(xw *xmlWriter, table *mctable.Table) {
	n := table.NumIsosurfaceVertices()
	xw.printf("<%s>\n<%s> %d </%s>\n", elemIsoVertices, elemNumVertices, n, elemNumVertices)
	for w := 0; w < n; w++ {
		writeIsoVertex(xw, table.IsosurfaceVertex(w))
	}
	xw.printf("</%s>\n", elemIsoVertices)
}

func writeIsoVertex(xw *xmlWriter, v isovertex.Vertex) {
	xw.printf("<%s>", elemW)
	switch v.Kind() {
	case isovertex.KindOnVertex:
		xw.printf("<%s> %d </%s>", elemInV, v.Index(), elemInV)
	case isovertex.KindOnEdge:
		xw.printf("<%s> %d </%s>", elemInE, v.Index(), elemInE)
	case isovertex.KindOnFacet:
		xw.printf("<%s> %d </%s>", elemInF, v.Index(), elemInF)
	case isovertex.KindAtPoint:
		x, y, z := v.Point()
		xw.printf("<%s> %g %g %g </%s>", elemC, x, y, z, elemC)
	}
	if label, isSet := v.Label().Value(); isSet {
		xw.printf("<%s> %s </%s>", elemL, label, elemL)
	}
	xw.printf("</%s>\n", elemW)
}

func writeTableProperties(xw *xmlWriter, table *mctable.Table) {
	p := table.Properties
	xw.printf("<%s>\n", elemTableProperties)
	xw.printf("<%s> %s </%s>\n", elemPolyVertexLabel, p.GridVertexLabel.String(), elemPolyVertexLabel)
	xw.printf("<%s> %s </%s>\n", elemSeparationType, p.Separation.String(), elemSeparationType)
	xw.printf("<%s> %s </%s>\n", elemTriangulationType, p.Triangulation.String(), elemTriangulationType)
	xw.printf("<%s> %t </%s>\n", elemSeparateOpposite, p.SeparateOpposite, elemSeparateOpposite)
	xw.printf("<%s> %s </%s>\n", elemIsoPolyOrientation, p.Orientation.String(), elemIsoPolyOrientation)
	xw.printf("</%s>\n", elemTableProperties)
}

func writeEntries(xw *xmlWriter, table *mctable.Table) {
	n := table.NumTableEntries()
	xw.printf("<%s> %d </%s>\n", elemNumEntries, n, elemNumEntries)
	for i := 0; i < n; i++ {
		k := table.NumSimplices(i)
		xw.printf("<%s> %d", elemS, k)
		for _, iv := range table.SimplexVertices(i) {
			xw.printf(" %d", iv)
		}
		xw.printf(" </%s>\n", elemS)
	}
}
