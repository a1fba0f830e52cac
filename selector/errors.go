package selector

import "fmt"

// ErrStepSyntax is returned when a step selector string does not match the
// grammar: SEL := ITEM ("," ITEM)* "+"? ; ITEM := STEP | STEP "-" STEP |
// "!" STEP | STEP "?" ; STEP := DIGIT+ ("." DIGIT+)*.
type ErrStepSyntax struct {
	Text   string
	Reason string
}

func (e *ErrStepSyntax) Error() string {
	return fmt.Sprintf("selector: invalid syntax %q: %s", e.Text, e.Reason)
}

// ErrNonPositiveStep is returned when a parsed step component is <= 0.
type ErrNonPositiveStep struct {
	Text string
}

func (e *ErrNonPositiveStep) Error() string {
	return fmt.Sprintf("selector: non-positive step component in %q", e.Text)
}

// ErrDuplicateStepBinding is returned when a selector defines the same
// exact true-at boundary twice.
type ErrDuplicateStepBinding struct {
	Text string
	At   string
}

func (e *ErrDuplicateStepBinding) Error() string {
	return fmt.Sprintf("selector: duplicate binding for step %s in %q", e.At, e.Text)
}
