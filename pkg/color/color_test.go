package color

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const tol = 1e-9

func TestColorArithmetic(t *testing.T) {
	c1 := New(0.9, 0.6, 0.75)
	c2 := New(0.7, 0.1, 0.25)

	tests := []struct {
		name     string
		got      Color
		expected Color
	}{
		{"add", c1.Add(c2), New(1.6, 0.7, 1.0)},
		{"sub", c1.Sub(c2), New(0.2, 0.5, 0.5)},
		{"scale", New(0.2, 0.3, 0.4).Scale(2), New(0.4, 0.6, 0.8)},
		{"mul", New(1, 0.2, 0.4).Mul(New(0.9, 1, 0.1)), New(0.9, 0.2, 0.04)},
		{"mul by black", c1.Mul(Black()), Black()},
		{"mul by white", c1.Mul(White()), c1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.ApproxEqual(tc.expected, tol) {
				t.Errorf("got %v, want %v", tc.got, tc.expected)
			}
		})
	}
}

func TestColorNoClamping(t *testing.T) {
	c := New(-0.5, 0.4, 1.7)
	if c.R != -0.5 || c.G != 0.4 || c.B != 1.7 {
		t.Errorf("New altered components: %v", c)
	}

	sum := New(0.9, 0.9, 0.9).Add(New(0.9, 0.9, 0.9))
	if sum.R <= 1 {
		t.Errorf("Add clamped: %v", sum)
	}
	if sum.InGamut() {
		t.Errorf("InGamut(%v) = true, want false", sum)
	}
	if diff := Black().Sub(White()); diff != New(-1, -1, -1) {
		t.Errorf("Sub = %v, want (-1, -1, -1)", diff)
	}
}

func TestColorClamped(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		expected Color
	}{
		{"in gamut", New(0.25, 0.5, 0.75), New(0.25, 0.5, 0.75)},
		{"hdr", New(1.6, 0.7, 1.0), New(1, 0.7, 1)},
		{"negative", New(-0.2, 0.3, -4), New(0, 0.3, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.c.Clamped()
			if got != tc.expected {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
			if !got.InGamut() {
				t.Errorf("Clamped(%v) = %v is out of gamut", tc.c, got)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{Black(), "#000000"},
		{White(), "#ffffff"},
		{New(1, 0, 0), "#ff0000"},
		{New(2.5, -1, 0.5), "#ff0080"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.c.Hex(); got != tc.expected {
				t.Errorf("Hex(%v) = %q, want %q", tc.c, got, tc.expected)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0080")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if !c.ApproxEqual(New(1, 0, 128.0/255.0), tol) {
		t.Errorf("ParseHex = %v, want (1, 0, 0.502)", c)
	}

	c, err = ParseHex("#f0f")
	if err != nil {
		t.Fatalf("ParseHex short form: %v", err)
	}
	if c != New(1, 0, 1) {
		t.Errorf("ParseHex short form = %v, want (1, 0, 1)", c)
	}

	if _, err := ParseHex("ff0080"); err == nil {
		t.Errorf("ParseHex without # should fail")
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	c := New(0.1, 1.2, -0.3)
	cf := c.Colorful()
	if cf != (colorful.Color{R: 0.1, G: 1.2, B: -0.3}) {
		t.Errorf("Colorful = %v, want unclamped channels", cf)
	}
	if back := FromColorful(cf); back != c {
		t.Errorf("FromColorful = %v, want %v", back, c)
	}
}
