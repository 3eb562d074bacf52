package polytope

// halfEdges is the optional half-edge extension: for each directed
// half-edge, the next and previous half-edge within its containing facet.
// For edge e oriented v0->v1, the forward half-edge has index 2e and the
// reverse has index 2e+1.
type halfEdges struct {
	next []int
	prev []int
}

// AddHalfEdges attaches the half-edge extension, sizing next/prev to
// 2*NumEdges. Callers populate Next/Prev via SetNext/SetPrev per facet
// traversal; the arrays start filled with -1 (unset).
func (p *Polytope) AddHalfEdges() {
	n := 2 * p.NumEdges()
	he := &halfEdges{next: make([]int, n), prev: make([]int, n)}
	for i := range he.next {
		he.next[i] = -1
		he.prev[i] = -1
	}
	p.he = he
}

// HasHalfEdges reports whether the half-edge extension has been attached.
func (p *Polytope) HasHalfEdges() bool { return p.he != nil }

// HalfEdgeEdge returns the edge index underlying half-edge h.
func HalfEdgeEdge(h int) int { return h / 2 }

// HalfEdgeIsForward reports whether half-edge h is the forward (v0->v1)
// orientation of its edge.
func HalfEdgeIsForward(h int) bool { return h%2 == 0 }

// HalfEdgeFrom returns the source vertex of half-edge h.
func (p *Polytope) HalfEdgeFrom(h int) int {
	e := p.edges[HalfEdgeEdge(h)]
	if HalfEdgeIsForward(h) {
		return e[0]
	}
	return e[1]
}

// HalfEdgeTo returns the destination vertex of half-edge h.
func (p *Polytope) HalfEdgeTo(h int) int {
	e := p.edges[HalfEdgeEdge(h)]
	if HalfEdgeIsForward(h) {
		return e[1]
	}
	return e[0]
}

// SetNext records that half-edge h's next half-edge (within its facet) is n.
func (p *Polytope) SetNext(h, n int) {
	p.he.next[h] = n
}

// SetPrev records that half-edge h's previous half-edge (within its facet) is v.
func (p *Polytope) SetPrev(h, v int) {
	p.he.prev[h] = v
}

// Next returns the next half-edge within h's facet, or -1 if unset.
func (p *Polytope) Next(h int) int {
	if p.he == nil {
		return -1
	}
	return p.he.next[h]
}

// Prev returns the previous half-edge within h's facet, or -1 if unset.
func (p *Polytope) Prev(h int) int {
	if p.he == nil {
		return -1
	}
	return p.he.prev[h]
}
