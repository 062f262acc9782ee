package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Hex(t *testing.T) {
	tests := []struct {
		input    string
		expected RGB
	}{
		{"#ff0000", RGB{255, 0, 0}},
		{"#00FF00", RGB{0, 255, 0}},
		{"#fff", RGB{255, 255, 255}},
		{"#abc", RGB{170, 187, 204}},
		{" #336699 ", RGB{51, 102, 153}},
	}

	for _, tt := range tests {
		rgb, err := Parse(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, rgb, "input %q", tt.input)
	}
}

func TestParse_RGBAndHSL(t *testing.T) {
	rgb, err := Parse("rgb(51, 102, 153)")
	require.NoError(t, err)
	assert.Equal(t, RGB{51, 102, 153}, rgb)

	rgb, err = Parse("hsl(0, 100%, 50%)")
	require.NoError(t, err)
	assert.Equal(t, RGB{255, 0, 0}, rgb)
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		"",
		"#ggg",
		"#12345",
		"rgb(300, 0, 0)",
		"hsl(400, 50%, 50%)",
		"cmyk(0,0,0,0)",
	}

	for _, input := range cases {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		rgb      RGB
		expected HSL
	}{
		{RGB{255, 0, 0}, HSL{0, 100, 50}},
		{RGB{0, 255, 0}, HSL{120, 100, 50}},
		{RGB{0, 0, 255}, HSL{240, 100, 50}},
		{RGB{255, 255, 255}, HSL{0, 0, 100}},
		{RGB{0, 0, 0}, HSL{0, 0, 0}},
		{RGB{128, 128, 128}, HSL{0, 0, 50}},
		{RGB{51, 102, 153}, HSL{210, 50, 40}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.rgb.ToHSL(), "rgb %v", tt.rgb)
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		hsl      HSL
		expected RGB
	}{
		{HSL{0, 100, 50}, RGB{255, 0, 0}},
		{HSL{120, 100, 50}, RGB{0, 255, 0}},
		{HSL{240, 100, 50}, RGB{0, 0, 255}},
		{HSL{0, 0, 100}, RGB{255, 255, 255}},
		{HSL{0, 0, 0}, RGB{0, 0, 0}},
		{HSL{210, 50, 40}, RGB{51, 102, 153}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.hsl.ToRGB(), "hsl %v", tt.hsl)
	}
}

func TestHexRendering(t *testing.T) {
	assert.Equal(t, "#336699", RGB{51, 102, 153}.Hex())
	assert.Equal(t, "rgb(51, 102, 153)", RGB{51, 102, 153}.String())
	assert.Equal(t, "hsl(210, 50%, 40%)", HSL{210, 50, 40}.String())
}

func TestRoundtripDriftIsBounded(t *testing.T) {
	// Integer rounding at each boundary may drift a channel by a point or
	// two but must stay close on a round trip.
	for _, rgb := range []RGB{{13, 87, 202}, {250, 13, 98}, {33, 33, 34}} {
		back := rgb.ToHSL().ToRGB()
		assert.InDelta(t, rgb.R, back.R, 3)
		assert.InDelta(t, rgb.G, back.G, 3)
		assert.InDelta(t, rgb.B, back.B, 3)
	}
}
