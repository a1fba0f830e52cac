// Package stepval implements StepVal[T], the sparse step-indexed value
// map that every stepped attribute in a slide deck is built on.
//
// Lookup at a step s returns the value at s if present, otherwise the
// value at the greatest key k <= s; if no such key exists, a supplied
// default (or the zero value) is returned. The implementation keeps keys
// sorted and looks them up with binary search, per the spec's SHOULD.
package stepval

import (
	"sort"

	"github.com/inkstage/inkstage/internal/invariant"
	"github.com/inkstage/inkstage/step"
)

// StepVal is a sparse mapping from Step to T, plus an optional set of
// "named" (emission-worthy) steps distinct from the map's own keys.
//
// StepVal is a value type: Copy duplicates both the map and the named-step
// set so callers can treat a StepVal as copy-on-write.
type StepVal[T any] struct {
	values     map[string]entry[T]
	sortedKeys []step.Step // lazily rebuilt; nil means "needs rebuild"
	namedSteps step.Set    // nil means "not set" - derive named steps from map keys instead
}

type entry[T any] struct {
	key   step.Step
	value T
}

// New builds an empty StepVal.
func New[T any]() *StepVal[T] {
	return &StepVal[T]{values: make(map[string]entry[T])}
}

// Const lifts a plain value to the constant StepVal {1: v}, matching the
// spec's "a plain value v lifts to the constant StepVal {1: v}".
func Const[T any](v T) *StepVal[T] {
	sv := New[T]()
	sv.At(step.FromInt(1), v)
	return sv
}

// At inserts value at key s, returning the receiver for chaining (matching
// the original API's builder-style `.at(step, value)`).
func (sv *StepVal[T]) At(s step.Step, value T) *StepVal[T] {
	sv.values[s.String()] = entry[T]{key: s.Clone(), value: value}
	sv.sortedKeys = nil
	return sv
}

// SetNamedSteps records the authoritative set of emission-worthy steps for
// this StepVal, overriding the "derive from map keys" default.
func (sv *StepVal[T]) SetNamedSteps(named step.Set) *StepVal[T] {
	sv.namedSteps = named
	return sv
}

// NamedSteps returns the step set that ExtractSteps should use for this
// value: the explicit named-step set if one was recorded, otherwise the
// keys of the sparse map.
func (sv *StepVal[T]) NamedSteps() step.Set {
	if sv.namedSteps != nil {
		return sv.namedSteps
	}
	out := step.NewSet()
	for _, e := range sv.values {
		out.Add(e.key)
	}
	return out
}

// Keys returns the sorted keys of the sparse map (not the named-step set).
func (sv *StepVal[T]) Keys() []step.Step {
	sv.ensureSorted()
	out := make([]step.Step, len(sv.sortedKeys))
	copy(out, sv.sortedKeys)
	return out
}

func (sv *StepVal[T]) ensureSorted() {
	if sv.sortedKeys != nil {
		return
	}
	keys := make([]step.Step, 0, len(sv.values))
	for _, e := range sv.values {
		keys = append(keys, e.key)
	}
	sort.Slice(keys, func(i, j int) bool { return step.Cmp(keys[i], keys[j]) < 0 })
	invariant.Invariant(sort.IsSorted(stepSlice(keys)), "stepval: sortedKeys not sorted after sort.Slice (len=%d)", len(keys))
	invariant.Invariant(len(keys) == len(sv.values), "stepval: sortedKeys length %d does not match values length %d", len(keys), len(sv.values))
	sv.sortedKeys = keys
}

// stepSlice adapts []step.Step to sort.Interface so sort.IsSorted can
// re-check ensureSorted's own sort.Slice call with the same step.Cmp
// ordering, rather than re-deriving sortedness some other way.
type stepSlice []step.Step

func (s stepSlice) Len() int           { return len(s) }
func (s stepSlice) Less(i, j int) bool { return step.Cmp(s[i], s[j]) < 0 }
func (s stepSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Get looks up the value in effect at step s: the value at s if present,
// else the value at the greatest key k <= s, else def.
func (sv *StepVal[T]) Get(s step.Step, def T) T {
	if e, ok := sv.values[s.String()]; ok {
		return e.value
	}
	sv.ensureSorted()
	// Binary search for the rightmost key <= s.
	lo, hi := 0, len(sv.sortedKeys)
	for lo < hi {
		mid := (lo + hi) / 2
		if step.Le(sv.sortedKeys[mid], s) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return def
	}
	k := sv.sortedKeys[lo-1]
	return sv.values[k.String()].value
}

// GetOk is like Get but also reports whether any key <= s was found.
func (sv *StepVal[T]) GetOk(s step.Step) (T, bool) {
	var zero T
	if e, ok := sv.values[s.String()]; ok {
		return e.value, true
	}
	sv.ensureSorted()
	lo, hi := 0, len(sv.sortedKeys)
	for lo < hi {
		mid := (lo + hi) / 2
		if step.Le(sv.sortedKeys[mid], s) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return zero, false
	}
	k := sv.sortedKeys[lo-1]
	return sv.values[k.String()].value, true
}

// Map transforms values pointwise, preserving keys and the named-step set.
func Map[T, U any](sv *StepVal[T], fn func(T) U) *StepVal[U] {
	out := New[U]()
	for _, e := range sv.values {
		out.At(e.key, fn(e.value))
	}
	out.namedSteps = sv.namedSteps
	return out
}

// Zip merges two StepVals over keys(a) union keys(b), applying fn at every
// boundary from either side so a caller can evaluate a function of both
// values at every point either one changes.
func Zip[A, B, R any](a *StepVal[A], b *StepVal[B], defA A, defB B, fn func(A, B) R) *StepVal[R] {
	out := New[R]()
	seen := step.NewSet()
	a.ensureSorted()
	b.ensureSorted()
	for _, k := range a.sortedKeys {
		seen.Add(k)
	}
	for _, k := range b.sortedKeys {
		seen.Add(k)
	}
	for _, k := range seen.Sorted() {
		av := a.Get(k, defA)
		bv := b.Get(k, defB)
		out.At(k, fn(av, bv))
	}
	return out
}

// Copy duplicates the map and the named-step set.
func (sv *StepVal[T]) Copy() *StepVal[T] {
	out := New[T]()
	for k, e := range sv.values {
		out.values[k] = entry[T]{key: e.key.Clone(), value: e.value}
	}
	if sv.namedSteps != nil {
		named := step.NewSet()
		named.AddAll(sv.namedSteps)
		out.namedSteps = named
	}
	return out
}

// Len reports the number of explicit entries in the sparse map.
func (sv *StepVal[T]) Len() int {
	return len(sv.values)
}
