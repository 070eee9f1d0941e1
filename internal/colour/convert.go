// Package colour converts between hex, RGB and HSL colour forms and derives legible
// foreground, background and border colours from a single base colour.
//
// Every function in this package is pure. Malformed input never produces an error:
// it degrades to black so callers always receive something displayable.
package colour

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/swatch/internal/util"
)

// RGB is a colour with each channel normalised to [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Hex returns the colour as a lowercase "#rrggbb" string.
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(rgb.R), channelByte(rgb.G), channelByte(rgb.B))
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)" using 0-255 channels.
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", channelByte(rgb.R), channelByte(rgb.G), channelByte(rgb.B))
}

// RGBA implements color.Color with full opacity.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: channelByte(rgb.R), G: channelByte(rgb.G), B: channelByte(rgb.B), A: 255}.RGBA()
}

// HSL is a colour in hue/saturation/lightness form.
// H is in degrees [0, 360); S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// CSS formats the colour as a space-separated CSS "hsl(h s l)" string.
// Numbers use their shortest form, so whole values carry no decimals.
func (hsl HSL) CSS() string {
	return fmt.Sprintf("hsl(%s %s %s)", formatNumber(hsl.H), formatNumber(hsl.S), formatNumber(hsl.L))
}

// HexToRGB parses a 3 or 6 digit hex colour, with or without a leading "#".
// Short forms are expanded by doubling each digit. Any other input yields black.
func HexToRGB(hex string) RGB {
	digits, ok := expandHex(hex)
	if !ok {
		return RGB{}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}
	}

	return RGB{
		R: float64((v>>16)&0xff) / 255,
		G: float64((v>>8)&0xff) / 255,
		B: float64(v&0xff) / 255,
	}
}

// RGBToHSL converts RGB to HSL. Hue is rounded to a whole degree; saturation and
// lightness are rounded to one decimal place. Achromatic colours have zero hue
// and saturation.
func RGBToHSL(rgb RGB) HSL {
	r, g, b := rgb.R, rgb.G, rgb.B

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	var h, s float64
	l := (maxVal + minVal) / 2

	if delta != 0 {
		switch maxVal {
		case r:
			h = math.Mod((g-b)/delta, 6)
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}

		h = util.FixedRound(h*60, 0)
		if h < 0 {
			h += 360
		}
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{
		H: h,
		S: util.FixedRound(s*100, 1),
		L: util.FixedRound(l*100, 1),
	}
}

// HexToHSL is shorthand for RGBToHSL(HexToRGB(hex)).
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToRGB converts HSL back to RGB. Out of range saturation and lightness are
// clamped to [0, 100]; hue wraps around the colour wheel.
func HSLToRGB(hsl HSL) RGB {
	s := clamp01(hsl.S / 100)
	l := clamp01(hsl.L / 100)

	if s == 0 {
		// Achromatic (grey).
		return RGB{R: l, G: l, B: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueToRGB(p, q, hsl.H+120),
		G: hueToRGB(p, q, hsl.H),
		B: hueToRGB(p, q, hsl.H-120),
	}
}

// HSLToHex converts HSL to a "#rrggbb" string.
func HSLToHex(hsl HSL) string {
	return HSLToRGB(hsl).Hex()
}

// NormaliseHex returns the lowercase "#rrggbb" form of a hex colour.
// Malformed input normalises to "#000000", matching HexToRGB.
func NormaliseHex(hex string) string {
	digits, ok := expandHex(hex)
	if !ok {
		return "#000000"
	}
	return "#" + strings.ToLower(digits)
}

// ParseColour resolves a hex colour or an "hsl(h s l)" string as produced by HSL.CSS.
// The boolean reports whether s was recognised; unrecognised input yields black.
func ParseColour(s string) (RGB, bool) {
	s = strings.TrimSpace(s)

	if inner, ok := strings.CutPrefix(s, "hsl("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return RGB{}, false
		}
		fields := strings.Fields(strings.ReplaceAll(inner, ",", " "))
		if len(fields) != 3 {
			return RGB{}, false
		}
		var vals [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
			if err != nil {
				return RGB{}, false
			}
			vals[i] = v
		}
		return HSLToRGB(HSL{H: vals[0], S: vals[1], L: vals[2]}), true
	}

	if _, ok := expandHex(s); !ok {
		return RGB{}, false
	}
	return HexToRGB(s), true
}

// RelativeLuminance calculates the relative luminance of a hex colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(hex string) float64 {
	rgb := HexToRGB(hex)
	return 0.2126*gammaCorrect(rgb.R) + 0.7152*gammaCorrect(rgb.G) + 0.0722*gammaCorrect(rgb.B)
}

// ContrastRatio scores the legibility of one colour against another.
//
// This is deliberately not the WCAG ratio (L1+0.05)/(L2+0.05). It computes
// (max(La, Lb) - 0.2) / (min(La, Lb) + 0.1), and the engine's 1.5 threshold is
// tuned against it. A colour compared with itself scores (L-0.2)/(L+0.1), never 1.
func ContrastRatio(a, b string) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	return (math.Max(la, lb) - 0.2) / (math.Min(la, lb) + 0.1)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// hueToRGB is a helper for HSL to RGB conversion.
func hueToRGB(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	t = math.Mod(t, 360)
	if t < 0 {
		t += 360
	}

	switch {
	case t < 60:
		return p + (q-p)*t/60
	case t < 180:
		return q
	case t < 240:
		return p + (q-p)*(240-t)/60
	default:
		return p
	}
}

// expandHex strips a leading "#" and returns the six hex digits of a 3 or 6 digit colour.
func expandHex(hex string) (string, bool) {
	digits := util.StripHash(hex)
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return "", false
		}
	}

	switch len(digits) {
	case 6:
		return digits, true
	case 3:
		return string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]}), true
	default:
		return "", false
	}
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// formatNumber prints a float in its shortest form ("90", "50.2").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
