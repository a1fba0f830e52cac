package layoutengine

import "fmt"

// ErrUnknownSceneChild is returned when Resolve encounters a scene child
// that is neither a *raw.Box, *shape.RawRect, nor *shape.RawPath - a
// defect in how raw.CompileSlide builds a Box.Children list, since those
// are the only three kinds it ever appends.
type ErrUnknownSceneChild struct {
	Type string
}

func (e *ErrUnknownSceneChild) Error() string {
	return fmt.Sprintf("layoutengine: unknown scene child type %s", e.Type)
}
