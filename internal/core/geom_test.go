package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestColorChannels(t *testing.T) {
	c := RGB(0xAA, 0x33, 0x00)
	if c != Color(0xAA3300) {
		t.Fatalf("RGB() = %06X, expected AA3300", uint32(c))
	}
	if c.R() != 0xAA || c.G() != 0x33 || c.B() != 0x00 {
		t.Errorf("channels = %02X %02X %02X, expected AA 33 00", c.R(), c.G(), c.B())
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{ColorWhite, "#FFFFFF"},
		{ColorBaseline, "#333333"},
		{Color(0x0000AA), "#0000AA"}, // leading zeros kept
		{Color(0), "#000000"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestColorFromChannels(t *testing.T) {
	if c, ok := ColorFromChannels(0xFF, 0x00, 0x33); !ok || c != Color(0xFF0033) {
		t.Errorf("ColorFromChannels(FF, 00, 33) = %s, %v", c, ok)
	}
	if _, ok := ColorFromChannels(256, 0, 0); ok {
		t.Error("ColorFromChannels should reject overflow")
	}
	if _, ok := ColorFromChannels(0, -1, 0); ok {
		t.Error("ColorFromChannels should reject underflow")
	}
}
