// Package render draws derived colour triples as PNG badges.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Options controls badge geometry. Zero values fall back to DefaultOptions.
type Options struct {
	Label       string
	Padding     int
	BorderWidth int
	MinWidth    int
}

// DefaultOptions returns the stock badge geometry.
func DefaultOptions() Options {
	return Options{Padding: 8, BorderWidth: 2, MinWidth: 48}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Padding <= 0 {
		o.Padding = d.Padding
	}
	if o.BorderWidth <= 0 {
		o.BorderWidth = d.BorderWidth
	}
	if o.MinWidth <= 0 {
		o.MinWidth = d.MinWidth
	}
	return o
}

// Badge draws the triple as a bordered badge with the label in the text colour.
// The border may be a hex or an hsl() string.
func Badge(t colour.Triple, opts Options) (*image.RGBA, error) {
	opts = opts.withDefaults()

	fg, err := resolve("color", t.Color)
	if err != nil {
		return nil, err
	}
	bg, err := resolve("background", t.Background)
	if err != nil {
		return nil, err
	}
	border, err := resolve("borderColor", t.BorderColor)
	if err != nil {
		return nil, err
	}

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, opts.Label).Ceil()
	metrics := face.Metrics()
	textHeight := (metrics.Ascent + metrics.Descent).Ceil()

	inset := opts.BorderWidth + opts.Padding
	width := max(textWidth+2*inset, opts.MinWidth)
	height := textHeight + 2*inset

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(border), image.Point{}, draw.Src)
	inner := img.Bounds().Inset(opts.BorderWidth)
	draw.Draw(img, inner, image.NewUniform(bg), image.Point{}, draw.Src)

	if opts.Label != "" {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(fg),
			Face: face,
			Dot:  fixed.P((width-textWidth)/2, inset+metrics.Ascent.Ceil()),
		}
		d.DrawString(opts.Label)
	}

	return img, nil
}

// WritePNG renders the badge and encodes it as PNG.
func WritePNG(w io.Writer, t colour.Triple, opts Options) error {
	img, err := Badge(t, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func resolve(field, value string) (color.Color, error) {
	rgb, ok := colour.ParseColour(value)
	if !ok {
		return nil, fmt.Errorf("cannot render %s %q", field, value)
	}
	return rgb, nil
}
