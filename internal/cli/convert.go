package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// convertedColour is the JSON shape for one convert result.
type convertedColour struct {
	Input     string     `json:"input"`
	Hex       string     `json:"hex"`
	RGB       colour.RGB `json:"rgb"`
	HSL       colour.HSL `json:"hsl"`
	CSS       string     `json:"css"`
	RoundTrip string     `json:"roundTrip"`
	Luminance float64    `json:"luminance"`
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <colour>...",
		Short: "Show a colour as hex, RGB and HSL",
		Long: `Show each colour in normalised hex, RGB and HSL form along with its relative
luminance. ROUNDTRIP is the hex obtained by converting the HSL form back, which may
differ by a step or two because hue is rounded to whole degrees.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConvert(cmd, args)
		},
	}
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	if err := a.validate(args...); err != nil {
		return err
	}

	results := make([]convertedColour, 0, len(args))
	for _, in := range args {
		rgb := colour.HexToRGB(in)
		hsl := colour.RGBToHSL(rgb)
		results = append(results, convertedColour{
			Input:     in,
			Hex:       colour.NormaliseHex(in),
			RGB:       rgb,
			HSL:       hsl,
			CSS:       hsl.CSS(),
			RoundTrip: colour.HSLToHex(hsl),
			Luminance: colour.RelativeLuminance(in),
		})
	}

	out := cmd.OutOrStdout()
	switch a.format {
	case formatJSON:
		return writeJSON(out, results)
	case formatCSS:
		for _, r := range results {
			if err := writeCSS(out, r.Input,
				cssDeclaration{"--hex", r.Hex},
				cssDeclaration{"--rgb", r.RGB.String()},
				cssDeclaration{"--hsl", r.CSS},
			); err != nil {
				return err
			}
		}
		return nil
	default:
		headers := []string{"INPUT", "HEX", "RGB", "HSL", "ROUNDTRIP", "LUMINANCE"}
		if !colour.DisableColourOutput {
			headers = append([]string{""}, headers...)
		}
		table := NewTable(headers...)
		for _, r := range results {
			row := []string{r.Input, r.Hex, r.RGB.String(), r.CSS, r.RoundTrip, strconv.FormatFloat(r.Luminance, 'f', 4, 64)}
			if !colour.DisableColourOutput {
				row = append([]string{colour.ColourPreview(r.RGB, 2)}, row...)
			}
			table.AddRow(row...)
		}
		_, err := fmt.Fprint(out, table.Render())
		return err
	}
}
