package orient

import (
	"github.com/rafewenger/iso3D-sub000/bitset"
	"github.com/rafewenger/iso3D-sub000/errreport"
	"github.com/rafewenger/iso3D-sub000/mctable"
	"github.com/rafewenger/iso3D-sub000/simplex"
)

// Engine makes an assembled table's simplex orientations globally
// consistent: every pair of entries that share a boundary facet (in the
// sense that decoding both indices yields the same label on every vertex
// of some polytope facet) ends up with simplices touching that facet in
// matching normal direction.
type Engine struct {
	table *mctable.Table
	cfg   *config

	meta         []*EntryMetadata
	facetMembers []*bitset.Set // [f] -> isosurface vertices lying on polytope facet f
	alignedPairs [][2]int       // (iA, iB) pairs actually used for cross-entry alignment during Run
}

// NewEngine builds fresh per-entry orientation metadata for every entry of
// table. Callers run OrientEntryLocally on each entry before calling Run,
// or call Run directly, which performs local orientation itself.
func NewEngine(table *mctable.Table, opts ...Option) *Engine {
	e := &Engine{table: table, cfg: newConfig(opts...)}
	e.meta = make([]*EntryMetadata, table.NumTableEntries())
	for i := range e.meta {
		e.meta[i] = buildEntryMetadata(table, i)
	}
	e.facetMembers = make([]*bitset.Set, table.Poly.NumFacets())
	for f := range e.facetMembers {
		e.facetMembers[f] = facetMembership(table, f)
	}
	return e
}

// Metadata returns the current orientation metadata for entry i.
func (e *Engine) Metadata(i int) *EntryMetadata { return e.meta[i] }

// OrientEntryLocally runs simplex.OrientAllSimplices on entry i's existing
// simplex-vertex arrays (flipping simplices in place within the table),
// then recomputes the entry's per-simplex metadata to reflect the flips.
func (e *Engine) OrientEntryLocally(i int) {
	list := simplexList(e.table, i)
	simplex.OrientAllSimplices(list)
	recomputePerSimplexBits(e.meta[i], list, e.table.NumIsosurfaceVertices())
}

// markClosedComponentsOriented marks, for every entry, every component
// that has no boundary facet anywhere within it as already oriented: there
// is nothing to align a closed component against.
func (e *Engine) markClosedComponentsOriented() {
	for i, m := range e.meta {
		hasBoundary := make([]bool, m.NumComponents)
		list := simplexList(e.table, i)
		for s := range list {
			if !m.IsBoundaryFacet[s].IsZero() {
				hasBoundary[m.ComponentOf[s]] = true
			}
		}
		for c := 0; c < m.NumComponents; c++ {
			if !hasBoundary[c] {
				m.ComponentOriented.Set(c)
			}
		}
	}
}

func (e *Engine) findSeed() (int, bool) {
	for i, m := range e.meta {
		if m.NumComponents == 1 && m.HasBoundaryFacet() && !m.IsFullyOriented() {
			return i, true
		}
	}
	return -1, false
}

// Run performs local orientation on every entry, then the cross-entry
// propagation algorithm: it finds a single-component seed entry with at
// least one boundary facet, then drains a stack of just-oriented
// single-component entries (aligning every remaining entry against each),
// then drains a stack of just-oriented multi-component entries the same
// way. It returns a non-nil Report, without panicking, if propagation
// terminates with unoriented components remaining.
func (e *Engine) Run() error {
	for i := range e.meta {
		e.OrientEntryLocally(i)
	}
	e.markClosedComponentsOriented()

	iStart, found := e.findSeed()
	if !found {
		if e.allOriented() {
			return nil
		}
		return errreport.New(errreport.KindConsistencyError,
			"no single-component seed entry with a boundary facet was found")
	}

	// worklist is a fixed ascending-index-order slice, not a map: spec.md's
	// determinism guarantee requires the worklist to be processed in a
	// fixed order, and Go map iteration order is randomized. inWorklist
	// tracks live membership so a "removal" is just a flag flip that
	// leaves the slice's order untouched.
	var worklist []int
	inWorklist := make([]bool, len(e.meta))
	remaining := 0
	for i, m := range e.meta {
		if i != iStart && !m.IsFullyOriented() {
			worklist = append(worklist, i)
			inWorklist[i] = true
			remaining++
		}
	}
	e.meta[iStart].ComponentOriented = bitset.New(maxInt(e.meta[iStart].NumComponents, 1))
	for c := 0; c < e.meta[iStart].NumComponents; c++ {
		e.meta[iStart].ComponentOriented.Set(c)
	}

	var stackI, stackMulti []int
	stackI = append(stackI, iStart)

	e.cfg.logger.Debug().Int("seed", iStart).Msg("orientation: seed entry selected")

	// stackI is drained in preference to stackMulti (single-component
	// entries make more reliable anchors), but either stack can refill
	// while the other drains, so the loop keeps going until both are
	// empty rather than draining each exactly once.
	for len(stackI) > 0 || len(stackMulti) > 0 {
		var a int
		if len(stackI) > 0 {
			a = stackI[len(stackI)-1]
			stackI = stackI[:len(stackI)-1]
		} else {
			a = stackMulti[len(stackMulti)-1]
			stackMulti = stackMulti[:len(stackMulti)-1]
		}
		for _, b := range worklist {
			if !inWorklist[b] {
				continue
			}
			e.orientTwoTableEntries(a, b)
			if e.meta[b].IsFullyOriented() {
				inWorklist[b] = false
				remaining--
				if e.meta[b].NumComponents == 1 {
					stackI = append(stackI, b)
				} else {
					stackMulti = append(stackMulti, b)
				}
			}
		}
	}

	if remaining > 0 {
		rep := errreport.New(errreport.KindConsistencyError, "propagation left entries unoriented")
		for _, i := range worklist {
			if !inWorklist[i] {
				continue
			}
			rep.Add("entry", i, "has unoriented components")
			e.cfg.logger.Debug().Int("entry", i).Msg("orientation: left unoriented")
		}
		return rep
	}
	return nil
}

func (e *Engine) allOriented() bool {
	for _, m := range e.meta {
		if !m.IsFullyOriented() {
			return false
		}
	}
	return true
}

// orientTwoTableEntries aligns B's unoriented components against A's
// simplices, per OrientTwoTableEntries in the original engine: for each
// unoriented simplex sB of B, it scans A's simplices for one sharing a
// boundary facet recognized by both entries (the shared isosurface-vertex
// set lies within some polytope facet on which both entries' vertex labels
// agree). Equal shared-facet swap parities mean inconsistent orientation,
// so every simplex in sB's component is flipped; either way the component
// is marked oriented.
func (e *Engine) orientTwoTableEntries(iA, iB int) {
	metaA, metaB := e.meta[iA], e.meta[iB]
	listA := simplexList(e.table, iA)
	listB := simplexList(e.table, iB)

	for sB := range listB {
		compB := metaB.ComponentOf[sB]
		if metaB.ComponentOriented.Test(compB) {
			continue
		}
		if metaB.IsBoundaryFacet[sB].IsZero() {
			continue
		}
		e.tryAlign(iA, iB, metaA, metaB, listA, listB, sB)
	}
}

func (e *Engine) tryAlign(iA, iB int, metaA, metaB *EntryMetadata, listA, listB [][]int, sB int) bool {
	for sA := range listA {
		shared := metaA.InSimplex[sA].Clone()
		shared.And(metaB.InSimplex[sB])
		if shared.IsZero() {
			continue
		}
		for f, members := range e.facetMembers {
			if !shared.IsSubsetOf(members) {
				continue
			}
			if !e.table.AreAllFacetVertexLabelsIdentical(iA, iB, f) {
				continue
			}
			wA, okA := firstNotIn(listA[sA], shared)
			wB, okB := firstNotIn(listB[sB], shared)
			if !okA || !okB {
				continue
			}
			parityA := metaA.FacetSwapParity[sA].Test(wA)
			parityB := metaB.FacetSwapParity[sB].Test(wB)
			comp := metaB.ComponentOf[sB]
			if parityA == parityB {
				e.flipComponent(iB, metaB, listB, comp)
			}
			metaB.ComponentOriented.Set(comp)
			e.alignedPairs = append(e.alignedPairs, [2]int{iA, iB})
			return true
		}
	}
	return false
}

func firstNotIn(verts []int, shared *bitset.Set) (int, bool) {
	for _, w := range verts {
		if !shared.Test(w) {
			return w, true
		}
	}
	return -1, false
}

func (e *Engine) flipComponent(iB int, metaB *EntryMetadata, listB [][]int, comp int) {
	for s := range listB {
		if metaB.ComponentOf[s] == comp {
			e.table.FlipIsoPolyOrientation(iB, s)
		}
	}
	recomputePerSimplexBits(metaB, listB, e.table.NumIsosurfaceVertices())
}
