package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafewenger/iso3D-sub000/bitset"
)

func TestSetClearTest(t *testing.T) {
	s := bitset.New(70) // spans two words
	require.False(t, s.Test(5))
	s.Set(5)
	require.True(t, s.Test(5))
	s.Set(69)
	require.True(t, s.Test(69))
	require.Equal(t, 2, s.PopCount())
	s.Clear(5)
	require.False(t, s.Test(5))
	require.Equal(t, 1, s.PopCount())
}

func TestAndOrXor(t *testing.T) {
	a := bitset.New(8)
	b := bitset.New(8)
	a.Set(0)
	a.Set(1)
	b.Set(1)
	b.Set(2)

	and := a.Clone()
	and.And(b)
	require.Equal(t, []int{1}, and.Bits())

	or := a.Clone()
	or.Or(b)
	require.Equal(t, []int{0, 1, 2}, or.Bits())

	xor := a.Clone()
	xor.Xor(b)
	require.Equal(t, []int{0, 2}, xor.Bits())
}

func TestIsSubsetOf(t *testing.T) {
	a := bitset.New(4)
	b := bitset.New(4)
	a.Set(1)
	b.Set(1)
	b.Set(2)
	require.True(t, a.IsSubsetOf(b))
	require.False(t, b.IsSubsetOf(a))
}

func TestIsZeroAndClearAll(t *testing.T) {
	s := bitset.New(16)
	require.True(t, s.IsZero())
	s.Set(3)
	require.False(t, s.IsZero())
	s.ClearAll()
	require.True(t, s.IsZero())
}

func TestOutOfRangePanics(t *testing.T) {
	s := bitset.New(4)
	require.Panics(t, func() { s.Set(4) })
	require.Panics(t, func() { s.Test(-1) })
}
