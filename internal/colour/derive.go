package colour

import "github.com/jmylchreest/swatch/internal/util"

const (
	// DefaultWhite is the light constant used for text and near-white backgrounds.
	DefaultWhite = "#ffffff"
	// DefaultBlack is the dark text constant (slate grey rather than pure black).
	DefaultBlack = "#1f2937"

	plainBackgroundThreshold = 95.0
	badgeBackgroundThreshold = 99.0
	lightForegroundThreshold = 75.0
	minWhiteContrast         = 1.5
	borderDarken             = 10.0
)

// Constants overrides the white and black colours used by DeriveBadge.
// Empty fields fall back to DefaultWhite and DefaultBlack.
type Constants struct {
	White string `json:"white,omitempty"`
	Black string `json:"black,omitempty"`
}

// DefaultConstants returns the stock white and black constants.
func DefaultConstants() Constants {
	return Constants{White: DefaultWhite, Black: DefaultBlack}
}

func (c Constants) withDefaults() Constants {
	if c.White == "" {
		c.White = DefaultWhite
	}
	if c.Black == "" {
		c.Black = DefaultBlack
	}
	return c
}

// Triple holds the derived text, background and border colours.
type Triple struct {
	Color       string `json:"color"`
	Background  string `json:"background"`
	BorderColor string `json:"borderColor"`
}

// BadgeTriple is a Triple with a stroke colour for badge outlines.
// Stroke always equals Color.
type BadgeTriple struct {
	Triple
	Stroke string `json:"stroke"`
}

// Derive picks a background, a legible text colour and a border for base.
//
// Near-white bases (L > 95) fall back to a white background. Text is dark when the
// base is light (L > 75) or white text would score under 1.5 on ContrastRatio.
// Dark text gets a border 10 points darker than the background, returned as a CSS
// hsl() string; light text needs no separate border.
func Derive(base string) Triple {
	consts := DefaultConstants()
	hsl := HexToHSL(base)

	background := pickBackground(base, hsl, plainBackgroundThreshold, consts)
	color := pickForeground(hsl, background, consts)

	border := background
	if color == consts.Black {
		border = darkenBorder(background).CSS()
	}

	return Triple{Color: color, Background: background, BorderColor: border}
}

// DeriveBadge is Derive tuned for compact badges. Only bases lighter than L 99 fall
// back to the white constant, the constants may be overridden, and a dark-text border
// is returned as a hex string.
func DeriveBadge(base string, c Constants) BadgeTriple {
	consts := c.withDefaults()
	hsl := HexToHSL(base)

	background := pickBackground(base, hsl, badgeBackgroundThreshold, consts)
	color := pickForeground(hsl, background, consts)

	border := background
	if color == consts.Black {
		border = HSLToHex(darkenBorder(background))
	}

	return BadgeTriple{
		Triple: Triple{Color: color, Background: background, BorderColor: border},
		Stroke: color,
	}
}

func pickBackground(base string, hsl HSL, threshold float64, consts Constants) string {
	if hsl.L > threshold {
		return consts.White
	}
	return NormaliseHex(base)
}

// pickForeground looks at the lightness of the base colour, not the background.
func pickForeground(base HSL, background string, consts Constants) string {
	if base.L > lightForegroundThreshold || ContrastRatio(consts.White, background) < minWhiteContrast {
		return consts.Black
	}
	return consts.White
}

func darkenBorder(background string) HSL {
	hsl := HexToHSL(background)
	hsl.L = max(util.FixedRound(hsl.L-borderDarken, 1), 0)
	return hsl
}
