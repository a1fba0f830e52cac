package box

import (
	"errors"

	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
	"github.com/inkstage/inkstage/textmodel"
)

// ErrNonPrimitiveStyle is returned by UpdateStyle when the existing style
// under name is itself stepped (not a single constant value), so there is
// no well-defined "merge the new fields over the old ones" operation.
var ErrNonPrimitiveStyle = errors.New("box: non-primitive style cannot be updated; use SetStyle instead")

// SetStyle binds name to style in this box's local scope, shadowing any
// style of the same name visible from an ancestor. "default" is not
// special-cased here; deck.Deck.SetStyle is where a constant "default" is
// merged over the existing entry instead of replacing it.
func (b *Box) SetStyle(name string, style *stepval.StepVal[textmodel.Style]) {
	if b.styles == nil {
		b.styles = make(map[string]*stepval.StepVal[textmodel.Style])
	}
	b.styles[name] = style
}

// UpdateStyle merges style's set fields over the existing constant style
// under name (creating it if absent), matching the original's
// `TextStyle.merge`-on-update semantics. It refuses to merge over a
// stepped style, since there is no single "existing value" to merge into.
func (b *Box) UpdateStyle(name string, style textmodel.Style) error {
	old, ok := b.GetStyle(name)
	if !ok {
		b.SetStyle(name, stepval.Const(style))
		return nil
	}
	if old.Len() > 1 {
		return ErrNonPrimitiveStyle
	}
	base := old.Get(step.FromInt(1), textmodel.Style{})
	b.SetStyle(name, stepval.Const(base.Update(style)))
	return nil
}

// GetStyle resolves name by walking this box's local scope and then each
// ancestor's, innermost first — the same parent-to-child precedence a
// persistent-stack-of-immutable-maps scope gives, without materializing
// the stack: a box only ever looks upward through pointers already held.
func (b *Box) GetStyle(name string) (*stepval.StepVal[textmodel.Style], bool) {
	for cur := b; cur != nil; cur = cur.parent {
		if cur.styles != nil {
			if sv, ok := cur.styles[name]; ok {
				return sv, true
			}
		}
	}
	return nil, false
}
