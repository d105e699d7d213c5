package core

import "fmt"

// Color is a 24-bit RGB foreground color for a display cell, stored as 0xRRGGBB.
type Color uint32

// Fixed colors shared by the whole display.
const (
	// ColorBaseline is the color of every unlit cell.
	ColorBaseline Color = 0x333333
	// ColorWhite is the full-bright fallback for malformed fade colors.
	ColorWhite Color = 0xFFFFFF
)

// RGB builds a color from its three channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// ColorFromChannels builds a color from unbounded channel values.
// Returns false if any channel falls outside [0, 255].
func ColorFromChannels(r, g, b int) (Color, bool) {
	for _, v := range [3]int{r, g, b} {
		if v < 0 || v > 0xFF {
			return 0, false
		}
	}
	return RGB(uint8(r), uint8(g), uint8(b)), true
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Channels returns the red, green and blue channels in order.
func (c Color) Channels() [3]uint8 {
	return [3]uint8{c.R(), c.G(), c.B()}
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}
