// Package step implements the step domain: the discrete "step" key that
// every stepped attribute in a slide deck is indexed by.
//
// A Step is a non-empty ordered sequence of non-negative integers. Steps
// compare lexicographically; a bare integer n is equivalent to the
// single-element tuple (n,). A step is visible iff its first component is
// >= 1.
package step

import "fmt"

// Step is an ordered, non-empty sequence of non-negative integers.
// A nil or empty Step is never produced by this package's constructors;
// callers that build one by hand must keep it non-empty.
type Step []int

// Of builds a Step from the given components. Of() with no arguments
// panics; every Step must have at least one component.
func Of(components ...int) Step {
	if len(components) == 0 {
		panic("step: Of requires at least one component")
	}
	s := make(Step, len(components))
	copy(s, components)
	return s
}

// FromInt builds the single-component Step equivalent to the bare integer n.
func FromInt(n int) Step {
	return Step{n}
}

// String renders a step as dot-joined integers, e.g. "2.5.1".
func (s Step) String() string {
	if len(s) == 0 {
		return ""
	}
	out := fmt.Sprintf("%d", s[0])
	for _, c := range s[1:] {
		out += fmt.Sprintf(".%d", c)
	}
	return out
}

// Visible reports whether a step is visible: its first component is >= 1.
// ignored, if non-nil, additionally excludes steps it reports true for.
func Visible(s Step, ignored func(Step) bool) bool {
	if len(s) == 0 || s[0] < 1 {
		return false
	}
	if ignored != nil && ignored(s) {
		return false
	}
	return true
}

// Cmp compares two steps lexicographically, component by component. When
// one step is a proper prefix of the other, the shorter one sorts first,
// so (2,) < (2,0); an int n is equivalent to the tuple (n,). Returns -1,
// 0, or 1.
func Cmp(a, b Step) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// Le reports whether a <= b under Cmp.
func Le(a, b Step) bool {
	return Cmp(a, b) <= 0
}

// Eq reports whether a and b compare equal under Cmp.
func Eq(a, b Step) bool {
	return Cmp(a, b) == 0
}

// Clone returns an independent copy of s.
func (s Step) Clone() Step {
	out := make(Step, len(s))
	copy(out, s)
	return out
}

// Shift returns a new step with its leading component increased by `by`,
// preserving any sub-step tail. Used when an image contributes named
// animation steps that must be offset into the surrounding slide's step
// space.
func Shift(s Step, by int) Step {
	out := s.Clone()
	out[0] += by
	return out
}

// Unshift is the inverse of Shift: it subtracts `by` from the leading
// component. If the result would have a leading component below 1, Unshift
// returns (nil, false) - "no corresponding step below the shift origin".
func Unshift(s Step, by int) (Step, bool) {
	out := s.Clone()
	out[0] -= by
	if out[0] < 1 {
		return nil, false
	}
	return out, true
}

// Set is an ordered set of steps, kept sorted and deduplicated by Sorted.
type Set map[string]Step

// NewSet builds an empty Set.
func NewSet() Set {
	return make(Set)
}

// Add inserts s into the set.
func (set Set) Add(s Step) {
	set[s.String()] = s.Clone()
}

// AddAll inserts every step from other into set.
func (set Set) AddAll(other Set) {
	for k, v := range other {
		set[k] = v
	}
}

// Sorted returns the set's members in ascending Cmp order.
func (set Set) Sorted() []Step {
	out := make([]Step, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	sortSteps(out)
	return out
}

func sortSteps(steps []Step) {
	// Simple insertion sort: step sets in a single slide are small
	// (tens, not thousands, of boundaries), and this keeps the
	// dependency-free, same-texture-as-the-rest-of-the-package style.
	for i := 1; i < len(steps); i++ {
		for j := i; j > 0 && Cmp(steps[j-1], steps[j]) > 0; j-- {
			steps[j-1], steps[j] = steps[j], steps[j-1]
		}
	}
}
