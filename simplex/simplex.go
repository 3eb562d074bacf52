package simplex

// SortFacetVertices moves simplexV[iloc] to the last position and sorts
// the remainder ascending by insertion sort, returning the canonical facet
// representation (the sorted remainder) and the parity (0 or 1) of the
// total number of adjacent transpositions used: those that walked
// simplexV[iloc] to the end, plus those the insertion sort performed.
func SortFacetVertices(simplexV []int, iloc int) (facet []int, swapParity int) {
	n := len(simplexV)
	work := append([]int(nil), simplexV...)

	moved := work[iloc]
	swaps := n - 1 - iloc
	copy(work[iloc:n-1], work[iloc+1:n])
	work[n-1] = moved

	for i := 1; i < n-1; i++ {
		for j := i; j > 0 && work[j-1] > work[j]; j-- {
			work[j-1], work[j] = work[j], work[j-1]
			swaps++
		}
	}
	return work[:n-1], swaps % 2
}

// DoesSimplexContainFacet reports whether facetV is, as an unordered set,
// exactly simplexV minus one vertex. On success it also returns the index
// within simplexV of that one missing ("opposite") vertex.
func DoesSimplexContainFacet(simplexV, facetV []int) (missingIloc int, ok bool) {
	if len(facetV) != len(simplexV)-1 {
		return -1, false
	}
	used := make([]bool, len(simplexV))
	for _, fv := range facetV {
		found := false
		for i, sv := range simplexV {
			if !used[i] && sv == fv {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			return -1, false
		}
	}
	missing, count := -1, 0
	for i, u := range used {
		if !u {
			missing, count = i, count+1
		}
	}
	if count != 1 {
		return -1, false
	}
	return missing, true
}

// DoSimplicesShareFacet iterates the opposite-vertex position ilocA over
// A's vertices, canonicalizes the resulting facet, and asks whether B
// contains it. On the first match it returns the opposite-vertex position
// in each simplex.
func DoSimplicesShareFacet(A, B []int) (ilocA, ilocB int, ok bool) {
	for i := range A {
		facet, _ := SortFacetVertices(A, i)
		if j, found := DoesSimplexContainFacet(B, facet); found {
			return i, j, true
		}
	}
	return -1, -1, false
}

// DoSimplicesShareVertexSorted is a two-pointer merge over two
// already-ascending-sorted vertex lists, returning the first shared vertex.
func DoSimplicesShareVertexSorted(aSorted, bSorted []int) (vertex int, ok bool) {
	i, j := 0, 0
	for i < len(aSorted) && j < len(bSorted) {
		switch {
		case aSorted[i] == bSorted[j]:
			return aSorted[i], true
		case aSorted[i] < bSorted[j]:
			i++
		default:
			j++
		}
	}
	return -1, false
}

// IsFacetABoundaryFacet canonicalizes the facet of list[iS] opposite
// vertex position iloc and reports whether no other simplex in list
// contains it.
func IsFacetABoundaryFacet(list [][]int, iS, iloc int) bool {
	facet, _ := SortFacetVertices(list[iS], iloc)
	for k, s := range list {
		if k == iS {
			continue
		}
		if _, found := DoesSimplexContainFacet(s, facet); found {
			return false
		}
	}
	return true
}

// AreAllConsistentlyOriented pairwise-checks that every pair of simplices
// in list sharing a facet has opposite swap parity on that facet (the
// definition of local orientation consistency). It returns the first
// offending pair, if any.
func AreAllConsistentlyOriented(list [][]int) (iA, iB int, ok bool) {
	for a := 0; a < len(list); a++ {
		for b := a + 1; b < len(list); b++ {
			ilocA, ilocB, shares := DoSimplicesShareFacet(list[a], list[b])
			if !shares {
				continue
			}
			_, parityA := SortFacetVertices(list[a], ilocA)
			_, parityB := SortFacetVertices(list[b], ilocB)
			if parityA == parityB {
				return a, b, false
			}
		}
	}
	return -1, -1, true
}

// flipLastTwo swaps the last two elements of s in place, flipping the
// orientation it encodes.
func flipLastTwo(s []int) {
	n := len(s)
	if n < 2 {
		return
	}
	s[n-1], s[n-2] = s[n-2], s[n-1]
}

// OrientSimplices performs a depth-first traversal of list starting at
// iStart via an explicit stack: pop a simplex A; for every unoriented B
// that shares a facet with A, equal swap parities mean inconsistent
// orientation, so B is flipped; B is then marked oriented in the caller's
// oriented slice and pushed. The traversal visits exactly the facet-
// connectivity component containing iStart.
//
// oriented must be pre-sized to len(list); OrientSimplices marks iStart
// (and everything it reaches) oriented as a side effect.
func OrientSimplices(list [][]int, iStart int, oriented []bool) {
	stack := []int{iStart}
	oriented[iStart] = true
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for b := range list {
			if oriented[b] {
				continue
			}
			ilocA, ilocB, shares := DoSimplicesShareFacet(list[a], list[b])
			if !shares {
				continue
			}
			_, parityA := SortFacetVertices(list[a], ilocA)
			_, parityB := SortFacetVertices(list[b], ilocB)
			if parityA == parityB {
				flipLastTwo(list[b])
			}
			oriented[b] = true
			stack = append(stack, b)
		}
	}
}

// OrientAllSimplices calls OrientSimplices from every unoriented simplex in
// list, in index order, and returns the number of facet-connected
// components it needed to start from.
func OrientAllSimplices(list [][]int) int {
	oriented := make([]bool, len(list))
	components := 0
	for i := range list {
		if !oriented[i] {
			OrientSimplices(list, i, oriented)
			components++
		}
	}
	return components
}

// BoundaryFacet is one boundary facet of a simplicial complex: its
// canonical (sorted) vertex list, the simplex that contributes it, and the
// swap parity canonicalization required.
type BoundaryFacet struct {
	Vertices          []int
	ContainingSimplex int
	SwapParity        int
}

// BoundaryFacets enumerates every boundary facet of list (a facet that no
// other simplex in list contains), in canonical sorted form.
func BoundaryFacets(list [][]int) []BoundaryFacet {
	var out []BoundaryFacet
	for iS, s := range list {
		for iloc := range s {
			if IsFacetABoundaryFacet(list, iS, iloc) {
				facet, parity := SortFacetVertices(s, iloc)
				out = append(out, BoundaryFacet{Vertices: facet, ContainingSimplex: iS, SwapParity: parity})
			}
		}
	}
	return out
}

// FacetConnectedComponents computes connected components of list under the
// facet-sharing relation (two simplices are adjacent iff DoSimplicesShareFacet
// holds), via union-find, and compacts the result into [0, numComponents).
func FacetConnectedComponents(list [][]int) (componentOf []int, numComponents int) {
	n := len(list)
	uf := NewUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, _, shares := DoSimplicesShareFacet(list[i], list[j]); shares {
				uf.Union(i, j)
			}
		}
	}
	return compactRoots(uf, n)
}

// VertexConnectedComponents computes connected components of listSorted (each
// entry already ascending-sorted) under the vertex-sharing relation, via
// union-find, and compacts the result into [0, numComponents).
func VertexConnectedComponents(listSorted [][]int) (componentOf []int, numComponents int) {
	n := len(listSorted)
	uf := NewUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, shares := DoSimplicesShareVertexSorted(listSorted[i], listSorted[j]); shares {
				uf.Union(i, j)
			}
		}
	}
	return compactRoots(uf, n)
}
