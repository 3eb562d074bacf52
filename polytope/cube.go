package polytope

// GenCube3D builds the canonical 3D cube: 8 vertices at each even-coordinate
// corner of [0,2]^3, 12 axis-aligned edges, and 6 facets (one low/high pair
// per axis). Vertex i occupies corner (2*(i&1), 2*((i>>1)&1), 2*((i>>2)&1)),
// so facet 0 (low-x) is {0,2,4,6} and facet 1 (high-x) is {1,3,5,7}.
func GenCube3D() *Polytope {
	const numV, numE, numF = 8, 12, 6
	p := NewPolytope(ShapeCube, 3)
	if err := p.SetSize(numV, numE, numF); err != nil {
		panic("polytope: GenCube3D: " + err.Error())
	}
	for i := 0; i < numV; i++ {
		coords := [3]int{2 * (i & 1), 2 * ((i >> 1) & 1), 2 * ((i >> 2) & 1)}
		for axis := 0; axis < 3; axis++ {
			_ = p.SetVertexCoord(i, axis, coords[axis])
		}
	}

	edge := 0
	for axis := 0; axis < 3; axis++ {
		for u := 0; u < numV; u++ {
			v := u | (1 << uint(axis))
			if u&(1<<uint(axis)) != 0 || v == u {
				continue
			}
			_ = p.SetEdge(edge, u, v)
			edge++
		}
	}

	facet := 0
	for axis := 0; axis < 3; axis++ {
		for side := 0; side < 2; side++ {
			k := 0
			for v := 0; v < numV; v++ {
				bit := (v >> uint(axis)) & 1
				if bit == side {
					_ = p.SetFacetVertex(facet, k, v)
					k++
				}
			}
			facet++
		}
	}
	p.ComputeIncidentEdges()
	return p
}

// GeneratePrism composes a simplex-prism by duplicating base's vertices
// into two layers (bottom at an extra coordinate of 0, top at 2),
// connecting corresponding vertices with vertical edges, and forming
// 2 + numBaseFacets facets: the two base copies plus one side facet per
// base facet.
func GeneratePrism(base *Polytope) *Polytope {
	vBase := base.NumVertices()
	eBase := base.NumEdges()
	fBase := base.NumFacets()

	p := NewPolytope(ShapeSimplexPrism, base.Dimension()+1)
	numV := 2 * vBase
	numE := 2*eBase + vBase
	numF := 2 + fBase
	if err := p.SetSize(numV, numE, numF); err != nil {
		panic("polytope: GeneratePrism: " + err.Error())
	}

	extra := base.Dimension()
	for i := 0; i < vBase; i++ {
		for axis := 0; axis < base.Dimension(); axis++ {
			_ = p.SetVertexCoord(i, axis, base.VertexCoord(i, axis))
			_ = p.SetVertexCoord(vBase+i, axis, base.VertexCoord(i, axis))
		}
		_ = p.SetVertexCoord(i, extra, 0)
		_ = p.SetVertexCoord(vBase+i, extra, 2)
	}

	edge := 0
	for e := 0; e < eBase; e++ {
		_ = p.SetEdge(edge, base.EdgeEndpoint(e, 0), base.EdgeEndpoint(e, 1))
		edge++
	}
	for e := 0; e < eBase; e++ {
		_ = p.SetEdge(edge, vBase+base.EdgeEndpoint(e, 0), vBase+base.EdgeEndpoint(e, 1))
		edge++
	}
	for v := 0; v < vBase; v++ {
		_ = p.SetEdge(edge, v, vBase+v)
		edge++
	}

	for k := 0; k < vBase; k++ {
		_ = p.SetFacetVertex(0, k, k)
		_ = p.SetFacetVertex(1, k, vBase+k)
	}
	for f := 0; f < fBase; f++ {
		verts := base.FacetVertices(f)
		k := 0
		for _, v := range verts {
			_ = p.SetFacetVertex(2+f, k, v)
			k++
			_ = p.SetFacetVertex(2+f, k, vBase+v)
			k++
		}
	}
	p.ComputeIncidentEdges()
	return p
}
