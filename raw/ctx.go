// Package raw compiles a slide's stepped Box tree into an immutable,
// per-step scene description: every stepped field resolved to its value at
// one step, ready to hand to a layout engine. It mirrors the original's
// box_to_raw/children_to_raw walk, with syntax highlighting and styled-text
// parsing (native to the original's Rust renderer) done here in Go via the
// textmodel package instead.
package raw

import (
	boxpkg "github.com/inkstage/inkstage/box"
)

// Ctx threads the ambient state a ToRaw walk accumulates while descending:
// the z-level a box inherits when it doesn't set its own, the default code
// theme/language a deck configures, and the slide-level debug-layout frame
// color (a box's own DebugLayout is not copied into it on descent). It is a
// small value
// type copied (not pointed to) at each recursion step, the same shape as
// the original's ToRawContext being shallow-copied on the way down.
type Ctx struct {
	CodeTheme    string
	CodeLanguage string
	ZLevel       int
	DebugLayout  string // "" disabled; else the slide-level frame color

	// DebugBoxes accumulates every box whose debug-layout overlay is active,
	// collected during ToRaw and drained by a layout engine after it
	// resolves geometry (see DebugLayoutFrame).
	DebugBoxes *[]*boxpkg.Box
}

func (c Ctx) withZLevel(z int) Ctx {
	c.ZLevel = z
	return c
}
