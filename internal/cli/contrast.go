package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// legibleThreshold mirrors the white-text cut-off used by the derive engine.
const legibleThreshold = 1.5

// contrastResult is the JSON shape for the contrast command.
type contrastResult struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	LuminanceA float64 `json:"luminanceA"`
	LuminanceB float64 `json:"luminanceB"`
	Ratio      float64 `json:"ratio"`
	Legible    bool    `json:"legible"`
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <colour> <colour>",
		Short: "Score the legibility of one colour against another",
		Long: `Print the legibility score used by derive and badge.

The score is (max(La, Lb) - 0.2) / (min(La, Lb) + 0.1) over WCAG relative
luminance. It is not the WCAG contrast ratio: identical colours do not score 1,
and pairs scoring below 1.5 are treated as illegible.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runContrast(cmd, args)
		},
	}
}

func (a *app) runContrast(cmd *cobra.Command, args []string) error {
	if err := a.validate(args...); err != nil {
		return err
	}

	res := contrastResult{
		A:          args[0],
		B:          args[1],
		LuminanceA: colour.RelativeLuminance(args[0]),
		LuminanceB: colour.RelativeLuminance(args[1]),
		Ratio:      colour.ContrastRatio(args[0], args[1]),
	}
	res.Legible = res.Ratio >= legibleThreshold
	a.logger.Debug("contrast", "a", res.A, "b", res.B, "ratio", res.Ratio)

	out := cmd.OutOrStdout()
	switch a.format {
	case formatJSON:
		return writeJSON(out, res)
	case formatCSS:
		return fmt.Errorf("contrast does not support css output")
	default:
		verdict := "legible"
		if !res.Legible {
			verdict = "illegible"
		}
		_, err := fmt.Fprintf(out, "%s vs %s: %.3f (%s)\n", res.A, res.B, res.Ratio, verdict)
		return err
	}
}
