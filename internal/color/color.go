// Package color converts colors between HEX, RGB and HSL notations using
// the standard max-channel formulas. Values are rounded to integers at every
// conversion boundary, so repeated round trips can drift slightly; that is
// the documented behavior, not a defect to smooth over.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aleister1102/devkit/internal/common"
)

// RGB is a color with 8-bit channels
type RGB struct {
	R int
	G int
	B int
}

// HSL is a color as hue [0,360), saturation and lightness percentages
type HSL struct {
	H int
	S int
	L int
}

// Hex renders the color as a lowercase #rrggbb string
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String renders the color in rgb() notation
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String renders the color in hsl() notation
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

var (
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslPattern = regexp.MustCompile(`^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
)

// Parse reads a color in #RGB, #RRGGBB, rgb() or hsl() notation. Each
// recognizer is tried in order and the first success wins.
func Parse(input string) (RGB, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	if strings.HasPrefix(trimmed, "#") {
		return parseHex(trimmed)
	}
	if m := rgbPattern.FindStringSubmatch(trimmed); m != nil {
		return parseRGBTriple(m[1], m[2], m[3])
	}
	if m := hslPattern.FindStringSubmatch(trimmed); m != nil {
		h, _ := strconv.Atoi(m[1])
		s, _ := strconv.Atoi(m[2])
		l, _ := strconv.Atoi(m[3])
		if h >= 360 || s > 100 || l > 100 {
			return RGB{}, common.NewValidationError("color", input, "hsl components out of range")
		}
		return HSL{H: h, S: s, L: l}.ToRGB(), nil
	}

	return RGB{}, common.NewValidationError("color", input, "must be #RGB, #RRGGBB, rgb(r,g,b) or hsl(h,s%,l%)")
}

func parseHex(input string) (RGB, error) {
	digits := input[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return RGB{}, common.NewValidationError("color", input, "hex color must have 3 or 6 digits")
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, common.WrapErrorf(err, "invalid hex color '%s'", input)
	}
	return RGB{
		R: int(value >> 16 & 0xff),
		G: int(value >> 8 & 0xff),
		B: int(value & 0xff),
	}, nil
}

func parseRGBTriple(rs, gs, bs string) (RGB, error) {
	r, _ := strconv.Atoi(rs)
	g, _ := strconv.Atoi(gs)
	b, _ := strconv.Atoi(bs)
	if r > 255 || g > 255 || b > 255 {
		return RGB{}, common.NewValidationError("color", fmt.Sprintf("rgb(%s, %s, %s)", rs, gs, bs), "rgb channels must be in [0,255]")
	}
	return RGB{R: r, G: g, B: b}, nil
}

// ToHSL converts to HSL with the max-channel hue branch, rounding every
// component to the nearest integer
func (c RGB) ToHSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	if maxC == minC {
		return HSL{H: 0, S: 0, L: roundPct(l)}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{
		H: int(math.Round(h)) % 360,
		S: roundPct(s),
		L: roundPct(l),
	}
}

// ToRGB converts to RGB, rounding every channel to the nearest integer
func (c HSL) ToRGB() RGB {
	h := float64(c.H) / 360
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	if s == 0 {
		gray := int(math.Round(l * 255))
		return RGB{R: gray, G: gray, B: gray}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: int(math.Round(hueToChannel(p, q, h+1.0/3) * 255)),
		G: int(math.Round(hueToChannel(p, q, h) * 255)),
		B: int(math.Round(hueToChannel(p, q, h-1.0/3) * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func roundPct(v float64) int {
	return int(math.Round(v * 100))
}
