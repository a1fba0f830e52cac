package textmodel

import colorful "github.com/lucasb-eyer/go-colorful"

// parseHexColor validates a "#rgb"/"#rrggbb" color string via go-colorful,
// the same hex parser charmbracelet/log pulls in for its own terminal
// color handling, so a style's Color gets real format checking instead of
// a hand-rolled hex regex.
func parseHexColor(s string) (colorful.Color, error) {
	return colorful.Hex(s)
}
