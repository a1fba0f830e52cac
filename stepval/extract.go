package stepval

import (
	"reflect"

	"github.com/inkstage/inkstage/step"
)

// namedStepper is implemented by every StepVal[T] instantiation (regardless
// of T) so ExtractSteps can recognize one without knowing T.
type namedStepper interface {
	namedStepsSet() step.Set
}

func (sv *StepVal[T]) namedStepsSet() step.Set {
	if sv == nil {
		return nil
	}
	return sv.NamedSteps()
}

// Extractable is implemented by model node types (box.Box, shape.Rect,
// shape.Path) that hold their own stepped fields and know how to
// contribute to a step.Set. ExtractSteps falls through to this interface
// after checking for a StepVal directly, mirroring the original's
// recursive walk over `__dict__.values()` for "known classes".
type Extractable interface {
	ExtractSteps(out step.Set)
}

// ExtractSteps traverses x - a StepVal, a slice/array/map of such things, an
// Extractable model node, or nil - and unions every stepped value's named
// steps (or map keys, if no named set was recorded) into out.
//
// ExtractSteps is monotone: adding a stepped value to a subtree can only
// grow the accumulated set, never shrink it, because every branch only
// calls out.Add/out.AddAll.
func ExtractSteps(out step.Set, x any) {
	if x == nil {
		return
	}
	if ns, ok := x.(namedStepper); ok {
		out.AddAll(ns.namedStepsSet())
		return
	}
	if ex, ok := x.(Extractable); ok {
		ex.ExtractSteps(out)
		return
	}

	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if v.Index(i).CanInterface() {
				ExtractSteps(out, v.Index(i).Interface())
			}
		}
	case reflect.Map:
		for _, key := range v.MapKeys() {
			val := v.MapIndex(key)
			if val.CanInterface() {
				ExtractSteps(out, val.Interface())
			}
		}
	case reflect.Ptr:
		if !v.IsNil() {
			ExtractSteps(out, v.Elem().Interface())
		}
	default:
		// Plain, non-stepped value: contributes nothing.
	}
}
