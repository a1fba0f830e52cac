package raw

import "fmt"

// ErrUnknownStyle is returned when a text/code box names a style via
// StyleName that is not visible anywhere in its ancestor scope.
type ErrUnknownStyle struct {
	Name string
}

func (e *ErrUnknownStyle) Error() string {
	return fmt.Sprintf("raw: unknown style %q", e.Name)
}
