package isovertex

// Kind tags which variant of Vertex is meaningful.
type Kind int

const (
	KindUndefined Kind = iota
	KindOnVertex
	KindOnEdge
	KindOnFacet
	KindAtPoint
)

// Label is the original SET_VALUE/BOOLEAN_SET_VALUE pattern applied to a
// string: a value paired with an explicit is-set flag, so "never set" is
// distinguishable from "set to the empty string".
type Label struct {
	value string
	isSet bool
}

// SetLabel returns a Label with value s, marked set (even if s is "").
func SetLabel(s string) Label {
	return Label{value: s, isSet: true}
}

// Value returns the label's string and whether it was ever set.
func (l Label) Value() (string, bool) {
	return l.value, l.isSet
}

// Vertex is the tagged-union isosurface vertex descriptor: exactly one of
// (face index, explicit point) is meaningful, determined by Kind. The label
// is carried orthogonally to the variant.
type Vertex struct {
	kind  Kind
	index int        // meaningful for KindOnVertex/OnEdge/OnFacet
	point [3]float64  // meaningful for KindAtPoint
	label Label
}

// OnVertex names an isosurface vertex by the polytope vertex index it lies on.
func OnVertex(index int) Vertex { return Vertex{kind: KindOnVertex, index: index} }

// OnEdge names an isosurface vertex by the polytope edge index it lies on.
func OnEdge(index int) Vertex { return Vertex{kind: KindOnEdge, index: index} }

// OnFacet names an isosurface vertex by the polytope facet index it lies on.
func OnFacet(index int) Vertex { return Vertex{kind: KindOnFacet, index: index} }

// AtPoint names an isosurface vertex by an explicit coordinate triple.
func AtPoint(x, y, z float64) Vertex {
	return Vertex{kind: KindAtPoint, point: [3]float64{x, y, z}}
}

// Kind returns which variant this Vertex holds.
func (v Vertex) Kind() Kind { return v.kind }

// Index returns the host-feature index; it is only meaningful when Kind is
// KindOnVertex, KindOnEdge, or KindOnFacet.
func (v Vertex) Index() int { return v.index }

// Point returns the explicit coordinate triple; it is only meaningful when
// Kind is KindAtPoint.
func (v Vertex) Point() (x, y, z float64) {
	return v.point[0], v.point[1], v.point[2]
}

// Label returns the vertex's optional label.
func (v Vertex) Label() Label { return v.label }

// WithLabel returns a copy of v with its label set to s.
func (v Vertex) WithLabel(s string) Vertex {
	v.label = SetLabel(s)
	return v
}
