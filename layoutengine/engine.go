// Package layoutengine resolves a compiled raw scene against the geometry
// an external layout algorithm returns for it, and synthesises the debug
// overlays a deck asked for. It does not implement layout itself: the
// actual CSS-flex-style box layout algorithm is an explicit non-goal (the
// core submits a scene and consumes a position map keyed by node
// identity), mirroring the original's split between the Python tree
// builder and its Rust layout/render backend.
package layoutengine

import (
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/raw"
)

// Engine is the external layout collaborator boundary: given a compiled
// scene it returns each node's final position and size, plus per-line and
// per-inline-anchor geometry for text content. A real implementation is
// out of scope here; this package only consumes the GeometryMap one hands
// back.
type Engine interface {
	Submit(scene *raw.Box) (layoutexpr.GeometryMap, error)
}
