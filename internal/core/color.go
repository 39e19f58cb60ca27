package core

import "fmt"

// Color is a 24-bit RGB pixel color. The framebuffer stores one Color per
// pixel; the platform layer decides how to map it onto the display.
type Color struct {
	R, G, B uint8
}

// RGB constructs a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as a "#RRGGBB" string, the form lipgloss and most
// terminal libraries accept.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
