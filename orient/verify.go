package orient

import (
	"github.com/rafewenger/iso3D-sub000/errreport"
	"github.com/rafewenger/iso3D-sub000/simplex"
)

// Verify checks local per-entry orientation consistency, then re-walks the
// same entry pairs the cross-entry propagation in Run actually aligned,
// confirming every such shared boundary facet still has unequal swap
// parity. Call it only after Run has populated the alignment trace; on a
// table whose orientation was never run, Verify only checks local
// consistency.
func (e *Engine) Verify() error {
	if err := e.verifyLocal(); err != nil {
		return err
	}
	for _, pair := range e.alignedPairs {
		if err := e.checkEntryPairConsistency(pair[0], pair[1]); err != nil {
			return err
		}
	}
	return nil
}

// VerifyAllPairs is the slower auditing verifier: it checks local
// consistency, then every pair of entries (not just the ones Run actually
// aligned), for global orientation consistency.
func (e *Engine) VerifyAllPairs() error {
	if err := e.verifyLocal(); err != nil {
		return err
	}
	n := len(e.meta)
	for iA := 0; iA < n; iA++ {
		for iB := iA + 1; iB < n; iB++ {
			if err := e.checkEntryPairConsistency(iA, iB); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) verifyLocal() error {
	for i := range e.meta {
		list := simplexList(e.table, i)
		if sA, sB, ok := simplex.AreAllConsistentlyOriented(list); !ok {
			return errreport.New(errreport.KindConsistencyError,
				"entry", i, "simplices", sA, sB, "share a facet with equal swap parity")
		}
	}
	return nil
}

// checkEntryPairConsistency confirms that every shared, facet-label-agreed
// boundary facet between entries iA and iB has unequal swap parity, using
// the same matching criteria orientTwoTableEntries used to align them, but
// without flipping anything.
func (e *Engine) checkEntryPairConsistency(iA, iB int) error {
	metaA, metaB := e.meta[iA], e.meta[iB]
	listA := simplexList(e.table, iA)
	listB := simplexList(e.table, iB)

	for sA := range listA {
		for sB := range listB {
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
				if parityA == parityB {
					return errreport.New(errreport.KindConsistencyError,
						"entries", iA, iB, "simplices", sA, sB, "facet", f,
						"have equal swap parity across a shared boundary facet")
				}
			}
		}
	}
	return nil
}
