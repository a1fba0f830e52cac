package step_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkstage/inkstage/step"
)

func TestCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b step.Step
		want int
	}{
		{"equal ints", step.FromInt(2), step.FromInt(2), 0},
		{"int less than int", step.FromInt(1), step.FromInt(2), -1},
		{"int-vs-tuple equivalence", step.FromInt(2), step.Of(2), 0},
		{"tuple extends int", step.Of(2), step.Of(2, 0), -1},
		{"lexicographic on first differing component", step.Of(2, 5), step.Of(2, 9), -1},
		{"shorter prefix sorts first", step.Of(2), step.Of(2, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, step.Cmp(tt.a, tt.b))
		})
	}
}

func TestVisible(t *testing.T) {
	assert.True(t, step.Visible(step.FromInt(1), nil))
	assert.False(t, step.Visible(step.FromInt(0), nil))
	assert.False(t, step.Visible(step.Of(0, 5), nil))

	ignored := func(s step.Step) bool { return step.Eq(s, step.FromInt(3)) }
	assert.True(t, step.Visible(step.FromInt(2), ignored))
	assert.False(t, step.Visible(step.FromInt(3), ignored))
}

func TestShiftUnshiftRoundTrip(t *testing.T) {
	tests := []step.Step{
		step.FromInt(1),
		step.FromInt(5),
		step.Of(3, 2),
	}
	for _, s := range tests {
		for _, by := range []int{0, 1, 4} {
			shifted := step.Shift(s, by)
			back, ok := step.Unshift(shifted, by)
			require.True(t, ok)
			assert.True(t, step.Eq(s, back), "unshift(shift(%s,%d),%d) = %s, want %s", s, by, by, back, s)
		}
	}
}

func TestUnshiftBelowOneReturnsFalse(t *testing.T) {
	_, ok := step.Unshift(step.FromInt(2), 5)
	assert.False(t, ok)
}

func TestSetSorted(t *testing.T) {
	set := step.NewSet()
	set.Add(step.FromInt(3))
	set.Add(step.FromInt(1))
	set.Add(step.Of(2, 5))
	set.Add(step.FromInt(1)) // duplicate, should not appear twice

	sorted := set.Sorted()
	require.Len(t, sorted, 3)
	assert.True(t, step.Eq(sorted[0], step.FromInt(1)))
	assert.True(t, step.Eq(sorted[1], step.Of(2, 5)))
	assert.True(t, step.Eq(sorted[2], step.FromInt(3)))
}
