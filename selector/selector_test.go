package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/selector"
	"github.com/inkstage/inkstage/step"
)

func TestParseRange(t *testing.T) {
	sv, named, err := selector.Parse("1-3")
	require.NoError(t, err)

	assert.True(t, sv.Get(step.FromInt(1), false))
	assert.True(t, sv.Get(step.FromInt(2), false))
	assert.True(t, sv.Get(step.FromInt(3), false))
	assert.False(t, sv.Get(step.FromInt(4), false))

	sorted := named.Sorted()
	require.Len(t, sorted, 3)
	for i, want := range []int{1, 2, 3} {
		assert.True(t, step.Eq(sorted[i], step.FromInt(want)))
	}
}

func TestParseTrailingPlus(t *testing.T) {
	sv, named, err := selector.Parse("2+")
	require.NoError(t, err)

	assert.False(t, sv.Get(step.FromInt(1), false))
	assert.True(t, sv.Get(step.FromInt(2), false))
	assert.True(t, sv.Get(step.FromInt(100), false))

	sorted := named.Sorted()
	require.Len(t, sorted, 1)
	assert.True(t, step.Eq(sorted[0], step.FromInt(2)))
}

func TestParseNegationBoundary(t *testing.T) {
	sv, _, err := selector.Parse("!5")
	require.NoError(t, err)

	// The boundary is strictly just before step 5's sub-steps: exactly at
	// step 5 the schedule is still whatever it was before (no explicit
	// entry here other than the false boundary at (5,0)), but any
	// substep of 5 (5,0), (5,1), ... sees false.
	_, ok := sv.GetOk(step.FromInt(5))
	assert.False(t, ok, "no true entry exists before the boundary in a bare !5 selector")
	assert.False(t, sv.Get(step.Of(5, 0), true))
	assert.False(t, sv.Get(step.Of(5, 1), true))
}

func TestParseSublevels(t *testing.T) {
	sv, named, err := selector.Parse("2.5.1")
	require.NoError(t, err)
	assert.True(t, sv.Get(step.Of(2, 5, 1), false))
	sorted := named.Sorted()
	require.Len(t, sorted, 1)
	assert.True(t, step.Eq(sorted[0], step.Of(2, 5, 1)))
}

func TestParseQuestionMarkExcludesFromNamed(t *testing.T) {
	sv, named, err := selector.Parse("3?")
	require.NoError(t, err)
	assert.True(t, sv.Get(step.FromInt(3), false))
	assert.Empty(t, named)
}

func TestParseMultipleItems(t *testing.T) {
	sv, named, err := selector.Parse("1,3,5")
	require.NoError(t, err)
	assert.True(t, sv.Get(step.FromInt(1), false))
	assert.False(t, sv.Get(step.FromInt(2), false))
	assert.True(t, sv.Get(step.FromInt(3), false))
	assert.False(t, sv.Get(step.FromInt(4), false))
	assert.True(t, sv.Get(step.FromInt(5), false))
	assert.Len(t, named, 3)
}

func TestParseRejectsEmptySelector(t *testing.T) {
	_, _, err := selector.Parse("")
	require.Error(t, err)
	var syntaxErr *selector.ErrStepSyntax
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestParseRejectsEmptyItem(t *testing.T) {
	_, _, err := selector.Parse("1,,3")
	require.Error(t, err)
}

func TestParseRejectsNonPositiveStep(t *testing.T) {
	_, _, err := selector.Parse("0")
	require.Error(t, err)
	var nonPositive *selector.ErrNonPositiveStep
	assert.ErrorAs(t, err, &nonPositive)
}

func TestParseRejectsDuplicateBinding(t *testing.T) {
	_, _, err := selector.Parse("2,2")
	require.Error(t, err)
	var dup *selector.ErrDuplicateStepBinding
	assert.ErrorAs(t, err, &dup)
}
