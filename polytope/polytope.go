package polytope

import (
	"github.com/rafewenger/iso3D-sub000/bitset"
	"github.com/rafewenger/iso3D-sub000/errreport"
)

// MaxVertices is the implementation ceiling on the number of vertices a
// Polytope may have; it bounds every facet-vertex bitset the package
// allocates. 3D cubes, simplices, pyramids and simplex-prisms built from
// them all stay comfortably under it.
const MaxVertices = 64

// Facet is one polytope facet: an ordered vertex list plus the equivalent
// membership bitset (kept in sync by SetFacetVertex).
type Facet struct {
	Vertices []int
	Members  *bitset.Set
}

// Polytope is a finite abstract polytope: vertices with even integer
// coordinates, edges, facets, and derived incident-edge lists. An optional
// half-edge extension (see halfedge.go) may be attached afterward.
//
// Construct one with NewPolytope, which sets the shape and dimension (a
// zero-value Polytope has dimension 0, so SetVertexCoord rejects every
// axis and Check fails), then call SetSize before any coordinate, edge,
// or facet setter.
type Polytope struct {
	shape     Shape
	dimension int

	coords [][]int // coords[v][axis]
	edges  [][2]int
	facets []Facet

	incidentEdges [][]int // incidentEdges[v] = edge indices touching v

	he *halfEdges // nil until AddHalfEdges is called
}

// NewPolytope returns an empty Polytope of the given shape and dimension.
// Call SetSize next.
func NewPolytope(shape Shape, dimension int) *Polytope {
	return &Polytope{shape: shape, dimension: dimension}
}

// Shape returns the polytope's shape tag.
func (p *Polytope) Shape() Shape { return p.shape }

// Dimension returns the polytope's ambient dimension.
func (p *Polytope) Dimension() int { return p.dimension }

// NumVertices returns the number of vertices.
func (p *Polytope) NumVertices() int { return len(p.coords) }

// NumEdges returns the number of edges.
func (p *Polytope) NumEdges() int { return len(p.edges) }

// NumFacets returns the number of facets.
func (p *Polytope) NumFacets() int { return len(p.facets) }

// SetSize allocates the three parallel sequences (vertices, edges, facets).
// It must precede any coordinate, edge, or facet setter. It returns an
// error if numV exceeds MaxVertices.
func (p *Polytope) SetSize(numV, numE, numF int) error {
	if numV < 0 || numE < 0 || numF < 0 {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetSize",
			"negative size: numV", numV, "numE", numE, "numF", numF)
	}
	if numV > MaxVertices {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetSize",
			"numV", numV, "exceeds MaxVertices", MaxVertices)
	}
	p.coords = make([][]int, numV)
	for i := range p.coords {
		p.coords[i] = make([]int, p.dimension)
	}
	p.edges = make([][2]int, numE)
	p.facets = make([]Facet, numF)
	p.incidentEdges = nil
	p.he = nil
	return nil
}

// SetVertexCoord sets coordinate axis of vertex i. It fails if value is
// odd, because midpoint coordinates must remain integral.
func (p *Polytope) SetVertexCoord(i, axis, value int) error {
	if i < 0 || i >= len(p.coords) {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetVertexCoord",
			"vertex index", i, "out of range")
	}
	if axis < 0 || axis >= p.dimension {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetVertexCoord",
			"axis", axis, "out of range")
	}
	if value%2 != 0 {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetVertexCoord",
			"coordinate", value, "is odd")
	}
	p.coords[i][axis] = value
	return nil
}

// VertexCoord returns coordinate axis of vertex i.
func (p *Polytope) VertexCoord(i, axis int) int {
	return p.coords[i][axis]
}

// MidpointCoord returns the integer midpoint, along axis, of edge e's two
// endpoints. It is exact because every vertex coordinate is even.
func (p *Polytope) MidpointCoord(e, axis int) int {
	v0, v1 := p.edges[e][0], p.edges[e][1]
	return (p.coords[v0][axis] + p.coords[v1][axis]) / 2
}

// SetEdge sets edge i to the unordered pair (a, b), with endpoint-range
// checking.
func (p *Polytope) SetEdge(i, a, b int) error {
	if i < 0 || i >= len(p.edges) {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetEdge",
			"edge index", i, "out of range")
	}
	n := len(p.coords)
	if a < 0 || a >= n || b < 0 || b >= n {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetEdge",
			"endpoint out of range: a", a, "b", b, "numVertices", n)
	}
	p.edges[i] = [2]int{a, b}
	return nil
}

// EdgeEndpoint returns endpoint j (0 or 1) of edge e.
func (p *Polytope) EdgeEndpoint(e, j int) int {
	return p.edges[e][j]
}

// SetFacetVertex records vertex v as the k-th vertex of facet f, in both
// the explicit list and the membership bitset.
func (p *Polytope) SetFacetVertex(f, k, v int) error {
	if f < 0 || f >= len(p.facets) {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetFacetVertex",
			"facet index", f, "out of range")
	}
	if v < 0 || v >= len(p.coords) {
		return errreport.Procedure(errreport.KindIllegalArgument, "Polytope.SetFacetVertex",
			"vertex", v, "out of range")
	}
	ft := &p.facets[f]
	for len(ft.Vertices) <= k {
		ft.Vertices = append(ft.Vertices, -1)
	}
	ft.Vertices[k] = v
	if ft.Members == nil {
		ft.Members = bitset.New(len(p.coords))
	}
	ft.Members.Set(v)
	return nil
}

// FacetVertices returns the explicit vertex list of facet f.
func (p *Polytope) FacetVertices(f int) []int {
	return p.facets[f].Vertices
}

// FacetMembers returns the membership bitset of facet f.
func (p *Polytope) FacetMembers(f int) *bitset.Set {
	return p.facets[f].Members
}

// ComputeIncidentEdges derives, for each vertex, its incident-edge list in
// one pass over the edge array. It is idempotent: calling it again simply
// recomputes the same result.
func (p *Polytope) ComputeIncidentEdges() {
	p.incidentEdges = make([][]int, len(p.coords))
	for e, ends := range p.edges {
		p.incidentEdges[ends[0]] = append(p.incidentEdges[ends[0]], e)
		p.incidentEdges[ends[1]] = append(p.incidentEdges[ends[1]], e)
	}
}

// IncidentEdges returns the incident-edge list of vertex v. It is nil until
// ComputeIncidentEdges has been called.
func (p *Polytope) IncidentEdges(v int) []int {
	if p.incidentEdges == nil {
		return nil
	}
	return p.incidentEdges[v]
}

// Check verifies the invariants: dimension set, non-empty vertex/edge
// arrays, even coordinates, valid edge endpoints, and (if any facet has
// vertices) a non-nil facet-vertex bitset.
func (p *Polytope) Check() error {
	if p.dimension < 1 {
		return errreport.Procedure(errreport.KindInvariantViolation, "Polytope.Check",
			"dimension", p.dimension, "must be >= 1")
	}
	if len(p.edges) < 1 {
		return errreport.Procedure(errreport.KindInvariantViolation, "Polytope.Check",
			"polytope has no edges")
	}
	if len(p.coords) < 1 {
		return errreport.Procedure(errreport.KindInvariantViolation, "Polytope.Check",
			"polytope has no vertices")
	}
	for v, c := range p.coords {
		for axis, val := range c {
			if val%2 != 0 {
				return errreport.Procedure(errreport.KindConsistencyError, "Polytope.Check",
					"vertex", v, "axis", axis, "coordinate", val, "is odd")
			}
		}
	}
	n := len(p.coords)
	for e, ends := range p.edges {
		if ends[0] < 0 || ends[0] >= n || ends[1] < 0 || ends[1] >= n {
			return errreport.Procedure(errreport.KindConsistencyError, "Polytope.Check",
				"edge", e, "has endpoint out of range")
		}
	}
	if len(p.facets) > 0 {
		for f, ft := range p.facets {
			if len(ft.Vertices) > 0 && ft.Members == nil {
				return errreport.Procedure(errreport.KindInvariantViolation, "Polytope.Check",
					"facet", f, "has no membership bitset")
			}
		}
	}
	return nil
}
