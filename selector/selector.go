// Package selector parses textual step selectors ("2+", "1-3,5", "2.5.1",
// "!5", "3?") into a StepVal[bool] schedule plus the set of named
// (emission-worthy) steps the selector declares.
//
// Grammar (informal, from the spec):
//
//	SEL  := ITEM ("," ITEM)* "+"?
//	ITEM := STEP | STEP "-" STEP | "!" STEP | STEP "?"
//	STEP := DIGIT+ ( "." DIGIT+ )*
//
// Each item contributes a Step (or range) at which the schedule becomes
// true; a trailing "+" keeps the final item's value true to infinity
// instead of closing it back to false at the next integer. "!" marks an
// exclusive upper bound; "?" declares a boundary without naming it.
package selector

import (
	"strconv"
	"strings"

	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// Parse parses a step selector and returns its boolean schedule and the set
// of named steps it declares. An empty text is a syntax error: the grammar
// requires at least one ITEM.
func Parse(text string) (*stepval.StepVal[bool], step.Set, error) {
	p := &parser{text: text}
	return p.parse()
}

type parser struct {
	text string
	pos  int // byte offset into text
}

type rawItem struct {
	kind     itemKind
	start    step.Step // for stepItem, rangeItem
	end      step.Step // for rangeItem only
	excluded bool      // true for "?" items: boundary recorded, not named
}

type itemKind int

const (
	stepItem itemKind = iota
	rangeItem
	negItem // "!STEP"
)

func (p *parser) parse() (*stepval.StepVal[bool], step.Set, error) {
	trimmed := strings.TrimSpace(p.text)
	if trimmed == "" {
		return nil, nil, &ErrStepSyntax{Text: p.text, Reason: "empty selector"}
	}

	trailingPlus := false
	body := trimmed
	if strings.HasSuffix(body, "+") {
		trailingPlus = true
		body = strings.TrimSuffix(body, "+")
	}
	if body == "" {
		return nil, nil, &ErrStepSyntax{Text: p.text, Reason: "no items before '+'"}
	}

	parts := strings.Split(body, ",")
	items := make([]rawItem, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, nil, &ErrStepSyntax{Text: p.text, Reason: "empty item"}
		}
		item, err := parseItem(p.text, part)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}

	sv := stepval.New[bool]()
	named := step.NewSet()
	seenTrue := step.NewSet()

	for i, item := range items {
		isLast := i == len(items)-1
		switch item.kind {
		case negItem:
			bound := append(item.start.Clone(), 0)
			sv.At(bound, false)

		case stepItem:
			if _, dup := seenTrue[item.start.String()]; dup {
				return nil, nil, &ErrDuplicateStepBinding{Text: p.text, At: item.start.String()}
			}
			seenTrue.Add(item.start)
			sv.At(item.start, true)
			if !item.excluded {
				named.Add(item.start)
			}
			if !(trailingPlus && isLast) {
				sv.At(stepPlusOne(item.start), false)
			}

		case rangeItem:
			if _, dup := seenTrue[item.start.String()]; dup {
				return nil, nil, &ErrDuplicateStepBinding{Text: p.text, At: item.start.String()}
			}
			seenTrue.Add(item.start)
			sv.At(item.start, true)
			addRangeNamed(named, item.start, item.end)
			if !(trailingPlus && isLast) {
				sv.At(stepPlusOne(item.end), false)
			}
		}
	}

	return sv, named, nil
}

// addRangeNamed adds every integer step in [a, b] to named when both
// endpoints are plain top-level steps (no sub-levels); otherwise it adds
// just the two endpoints, since enumerating a dotted range is undefined.
func addRangeNamed(named step.Set, a, b step.Step) {
	if len(a) == 1 && len(b) == 1 && a[0] <= b[0] {
		for n := a[0]; n <= b[0]; n++ {
			named.Add(step.FromInt(n))
		}
		return
	}
	named.Add(a)
	named.Add(b)
}

// stepPlusOne returns the step that closes off a top-level step: only the
// leading component is incremented, matching `parse_selector("1-3")`
// yielding the false boundary at plain step 4.
func stepPlusOne(s step.Step) step.Step {
	return step.FromInt(s[0] + 1)
}

func parseItem(fullText, part string) (rawItem, error) {
	if strings.HasSuffix(part, "?") {
		body := strings.TrimSuffix(part, "?")
		s, err := parseStep(fullText, body)
		if err != nil {
			return rawItem{}, err
		}
		return rawItem{kind: stepItem, start: s, excluded: true}, nil
	}
	if strings.HasPrefix(part, "!") {
		body := strings.TrimPrefix(part, "!")
		s, err := parseStep(fullText, body)
		if err != nil {
			return rawItem{}, err
		}
		return rawItem{kind: negItem, start: s}, nil
	}
	if idx := strings.Index(part, "-"); idx > 0 {
		a, err := parseStep(fullText, part[:idx])
		if err != nil {
			return rawItem{}, err
		}
		b, err := parseStep(fullText, part[idx+1:])
		if err != nil {
			return rawItem{}, err
		}
		if step.Cmp(b, a) < 0 {
			return rawItem{}, &ErrStepSyntax{Text: fullText, Reason: "range end before start: " + part}
		}
		return rawItem{kind: rangeItem, start: a, end: b}, nil
	}
	s, err := parseStep(fullText, part)
	if err != nil {
		return rawItem{}, err
	}
	return rawItem{kind: stepItem, start: s}, nil
}

// parseStep parses a dotted STEP token, e.g. "2", "2.5.1".
func parseStep(fullText, text string) (step.Step, error) {
	if text == "" {
		return nil, &ErrStepSyntax{Text: fullText, Reason: "empty step"}
	}
	pieces := strings.Split(text, ".")
	out := make(step.Step, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			return nil, &ErrStepSyntax{Text: fullText, Reason: "empty step component in " + text}
		}
		for _, r := range piece {
			if r < '0' || r > '9' {
				return nil, &ErrStepSyntax{Text: fullText, Reason: "non-digit in step " + text}
			}
		}
		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, &ErrStepSyntax{Text: fullText, Reason: "invalid integer " + piece}
		}
		if n < 1 {
			return nil, &ErrNonPositiveStep{Text: fullText}
		}
		out = append(out, n)
	}
	return out, nil
}
