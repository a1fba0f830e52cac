package textmodel

import (
	"strings"

	"github.com/inkstage/inkstage/selector"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

var stepMarkerModes = map[string]bool{"e": true, "n": true, "en": true}

// DefaultCodeStepMarker is the trailing-line token a code() box looks for
// when no caller-supplied marker is given. The retrieval pack's Rust
// renderer resolves step markers natively and the literal token it scans
// for did not survive into the source dump this port is grounded on, so
// this default is chosen rather than recovered: two tildes, visually
// distinct from the "~name{...}" inline style delimiter's single tilde and
// unlikely to collide with a real line of source code.
const DefaultCodeStepMarker = "~~"

type lineStep struct {
	text     string
	sv       *stepval.StepVal[bool] // nil: line is always visible
	addEmpty bool
}

// ParseStepMarkers recognizes a trailing "<marker> [MODE ;] SELECTOR" on each
// line of text. MODE is any of "e", "n", "en": "n" inverts the line's
// selector, "e" causes an empty line to be emitted (instead of nothing) when
// the line is hidden. An empty SELECTOR after the marker inherits the
// previous marked line's selector and mode.
//
// The result is a StepVal[string] whose value at step s is the
// newline-joined concatenation of the lines visible at s, plus the set of
// named steps declared by any line's selector.
func ParseStepMarkers(text string, marker string) (*stepval.StepVal[string], step.Set, error) {
	rawLines := strings.Split(text, "\n")
	lines := make([]lineStep, len(rawLines))

	named := step.NewSet()
	boundary := step.NewSet()
	boundary.Add(step.FromInt(1))

	var prevSV *stepval.StepVal[bool]
	var prevNamed step.Set
	prevAddEmpty := false

	for i, raw := range rawLines {
		lineText, sv, lineNamed, addEmpty, err := processStepLine(raw, marker, prevSV, prevNamed, prevAddEmpty, i)
		if err != nil {
			return nil, nil, err
		}
		if sv != nil {
			prevSV, prevNamed, prevAddEmpty = sv, lineNamed, addEmpty
		}
		lines[i] = lineStep{text: lineText, sv: sv, addEmpty: addEmpty}
		if sv != nil {
			for _, k := range sv.Keys() {
				boundary.Add(k)
			}
			named.AddAll(lineNamed)
		}
	}

	result := stepval.New[string]()
	for _, s := range boundary.Sorted() {
		parts := make([]string, 0, len(lines))
		for _, ln := range lines {
			switch {
			case ln.sv == nil:
				parts = append(parts, ln.text)
			case ln.sv.Get(s, false):
				parts = append(parts, ln.text)
			case ln.addEmpty:
				parts = append(parts, "")
			}
		}
		result.At(s, strings.Join(parts, "\n"))
	}
	result.SetNamedSteps(named)
	return result, named, nil
}

func processStepLine(
	line, marker string,
	prevSV *stepval.StepVal[bool], prevNamed step.Set, prevAddEmpty bool,
	lineIdx int,
) (text string, sv *stepval.StepVal[bool], named step.Set, addEmpty bool, err error) {
	idx := strings.LastIndex(line, marker)
	if idx == -1 {
		return line, nil, nil, false, nil
	}
	head := line[:idx]
	rest := line[idx+len(marker):]

	mode := ""
	stepDef := rest
	if semi := strings.Index(rest, ";"); semi != -1 {
		mode = strings.TrimSpace(rest[:semi])
		stepDef = rest[semi+1:]
		if !stepMarkerModes[mode] {
			return "", nil, nil, false, &ErrInvalidModeFlag{Line: lineIdx, Mode: mode}
		}
	}
	stepDef = strings.TrimSpace(stepDef)
	if stepDef == "" {
		return head, prevSV, prevNamed, prevAddEmpty, nil
	}

	parsed, parsedNamed, parseErr := selector.Parse(stepDef)
	if parseErr != nil {
		return "", nil, nil, false, parseErr
	}
	if strings.Contains(mode, "n") {
		parsed = invertBoolSteps(parsed)
	}
	return head, parsed, parsedNamed, strings.Contains(mode, "e"), nil
}

// invertBoolSteps negates every explicit entry and pins the negated implicit
// default (false before any key) at step 1. Without this, a selector whose
// first explicit key is above step 1 (e.g. "2-3") would invert to "false"
// everywhere before that key instead of the correct "true": the lookup
// default for an unkeyed step is always false, so negating the function
// means step 1 must explicitly carry the negated default.
func invertBoolSteps(sv *stepval.StepVal[bool]) *stepval.StepVal[bool] {
	out := stepval.New[bool]()
	one := step.FromInt(1)
	if _, ok := sv.GetOk(one); !ok {
		out.At(one, !sv.Get(one, false))
	}
	for _, k := range sv.Keys() {
		out.At(k, !sv.Get(k, false))
	}
	return out
}
