package errreport_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafewenger/iso3D-sub000/errreport"
)

func TestAddHeterogeneous(t *testing.T) {
	r := errreport.New(errreport.KindIllegalArgument, "index", 5, "out of range, odd:", true)
	require.Equal(t, "index 5 out of range, odd: true", r.Error())
	require.True(t, errors.Is(r, errreport.ErrIllegalArgument))
}

func TestProcedurePrefix(t *testing.T) {
	r := errreport.Procedure(errreport.KindInvariantViolation, "SetVertexCoord", "coordinate", 3, "is odd")
	lines := r.Lines()
	require.Equal(t, "Error detected in SetVertexCoord.", lines[0])
	require.Equal(t, "coordinate 3 is odd", lines[1])
}

func TestMultipleAddsAccumulate(t *testing.T) {
	r := errreport.New(errreport.KindFormatError)
	r.Add("missing tag", "poly")
	r.Add("line", 12)
	require.Equal(t, []string{"missing tag poly", "line 12"}, r.Lines())
}

func TestUnwrapMatchesKind(t *testing.T) {
	r := errreport.New(errreport.KindUnknownValue, "bogus")
	require.True(t, errors.Is(r, errreport.ErrUnknownValue))
	require.False(t, errors.Is(r, errreport.ErrFormatError))
}
