// Package textmodel implements styled-text parsing, inline anchors, code
// step-gating, and syntax highlighting for text content nodes.
package textmodel

import "strings"

// FontStretch is the nine-step condensed/expanded axis a font family can
// support, mirroring CSS font-stretch / the original's FontStretch enum.
type FontStretch int

const (
	StretchUltraCondensed FontStretch = 1
	StretchExtraCondensed FontStretch = 2
	StretchCondensed      FontStretch = 3
	StretchSemiCondensed  FontStretch = 4
	StretchNormal         FontStretch = 5
	StretchSemiExpanded   FontStretch = 6
	StretchExpanded       FontStretch = 7
	StretchExtraExpanded  FontStretch = 8
	StretchUltraExpanded  FontStretch = 9
)

func (s FontStretch) valid() bool {
	return s >= StretchUltraCondensed && s <= StretchUltraExpanded
}

// Style is a partially-specified text style: any field left nil/empty is
// "unset" and inherits from whatever it is merged over. Merging several
// named styles (plus a base style) left-to-right always yields a fully
// resolved Style as long as the base style has every field set.
type Style struct {
	FontFamily  []string
	Color       *string
	Size        *float64
	LineSpacing *float64

	Italic      *bool
	Underline   *bool
	LineThrough *bool
	Stretch     *FontStretch

	// Weight is 1-1000; 400 is normal weight, 700 is bold.
	Weight *int

	// Bold, if true, overrides Weight and forces weight 700.
	Bold *bool
}

// NewStyle validates s and returns it unchanged, matching the original's
// TextStyle.__post_init__: Color, Size, LineSpacing, Weight, and Stretch
// are checked when set; every other field is accepted as-is.
func NewStyle(s Style) (Style, error) {
	if s.Color != nil {
		if err := validateColor(*s.Color); err != nil {
			return Style{}, err
		}
	}
	if s.Size != nil && *s.Size < 0 {
		return Style{}, &ErrInvalidStyle{Reason: "size must be >= 0"}
	}
	if s.LineSpacing != nil && *s.LineSpacing < 0 {
		return Style{}, &ErrInvalidStyle{Reason: "line_spacing must be >= 0"}
	}
	if s.Weight != nil && (*s.Weight < 1 || *s.Weight > 1000) {
		return Style{}, &ErrInvalidStyle{Reason: "weight must be between 1 and 1000"}
	}
	if s.Stretch != nil && !s.Stretch.valid() {
		return Style{}, &ErrInvalidStyle{Reason: "stretch must be one of the nine FontStretch steps"}
	}
	return s, nil
}

// validateColor rejects an empty color and, for "#"-prefixed values,
// anything that isn't valid hex — matching the strictness of the
// go-colorful parse this package otherwise delegates hex color handling
// to. Named CSS colors (e.g. "black", "red") are accepted without further
// checking, the same leniency the original's own check_color gives them.
func validateColor(color string) error {
	if color == "" {
		return &ErrInvalidStyle{Reason: "color must not be empty"}
	}
	if strings.HasPrefix(color, "#") {
		if _, err := parseHexColor(color); err != nil {
			return &ErrInvalidStyle{Reason: "invalid color: " + err.Error()}
		}
	}
	return nil
}

// Update merges other over s: every field other sets wins, every field
// other leaves unset falls back to s's value.
func (s Style) Update(other Style) Style {
	out := s
	if other.FontFamily != nil {
		out.FontFamily = other.FontFamily
	}
	if other.Color != nil {
		out.Color = other.Color
	}
	if other.Size != nil {
		out.Size = other.Size
	}
	if other.LineSpacing != nil {
		out.LineSpacing = other.LineSpacing
	}
	if other.Italic != nil {
		out.Italic = other.Italic
	}
	if other.Underline != nil {
		out.Underline = other.Underline
	}
	if other.LineThrough != nil {
		out.LineThrough = other.LineThrough
	}
	if other.Stretch != nil {
		out.Stretch = other.Stretch
	}
	if other.Weight != nil {
		out.Weight = other.Weight
	}
	if other.Bold != nil {
		out.Bold = other.Bold
	}
	return out
}

// Float64 returns a pointer to f, for building Style literals inline.
func Float64(f float64) *float64 { return &f }

// StringPtr returns a pointer to s, for building Style literals inline.
func StringPtr(s string) *string { return &s }

// Bool returns a pointer to b, for building Style literals inline.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for building Style literals inline.
func Int(i int) *int { return &i }

// Stretch returns a pointer to fs, for building Style literals inline.
func Stretch(fs FontStretch) *FontStretch { return &fs }

// DefaultStyle returns the base style every text content merges named
// styles over. Every field is populated: this is the style the renderer
// falls back to when no named style touches a given attribute, matching
// the original's DEFAULT_TEXT_STYLE.
func DefaultStyle() Style {
	return Style{
		FontFamily:  []string{"DejaVu Sans"},
		Color:       StringPtr("black"),
		Size:        Float64(32),
		LineSpacing: Float64(1.2),
		Italic:      Bool(false),
		Underline:   Bool(false),
		LineThrough: Bool(false),
		Stretch:     Stretch(StretchNormal),
		Weight:      Int(400),
		Bold:        Bool(false),
	}
}
