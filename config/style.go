package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute represents text attributes (bold, italic, etc.) carried by
// a style hint. Hosts map attributes onto whatever their rendering
// surface supports.
type Attribute uint16

// Text attribute flags.
const (
	AttrNone          Attribute = 0
	AttrBold          Attribute = 1 << iota
	AttrDim                     // Faint/dim text
	AttrItalic                  // Italic text
	AttrUnderline               // Underlined text
	AttrStrikethrough           // Strikethrough text
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Color is a true-color RGB value. The zero value with Default set
// stands for "no color chosen", letting hosts substitute their own.
type Color struct {
	R, G, B uint8
	// Default indicates the host's default color should be used.
	Default bool
}

// ColorDefault represents the host's default color.
var ColorDefault = Color{Default: true}

// ColorFromRGB creates a color from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex creates a color from a hex string such as "#ffcc00" or
// "fc0".
func ColorFromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// IsDefault returns true if this is the host default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Style is the visual hint attached to a syntax class. The tokenizer
// core never renders; styles exist so hosts can present tokens without
// maintaining their own class table.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns the host default style.
func DefaultStyle() Style {
	return Style{
		Foreground: ColorDefault,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// NewStyle creates a style with the given foreground color.
func NewStyle(fg Color) Style {
	return Style{
		Foreground: fg,
		Background: ColorDefault,
		Attributes: AttrNone,
	}
}

// WithBackground returns a new style with the given background color.
func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Bold returns a new style with the bold attribute added.
func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

// Dim returns a new style with the dim attribute added.
func (s Style) Dim() Style {
	s.Attributes |= AttrDim
	return s
}

// Italic returns a new style with the italic attribute added.
func (s Style) Italic() Style {
	s.Attributes |= AttrItalic
	return s
}

// Underline returns a new style with the underline attribute added.
func (s Style) Underline() Style {
	s.Attributes |= AttrUnderline
	return s
}

// Strikethrough returns a new style with the strikethrough attribute
// added.
func (s Style) Strikethrough() Style {
	s.Attributes |= AttrStrikethrough
	return s
}
