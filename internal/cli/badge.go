package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// badgeColours is the JSON shape for one badge result.
type badgeColours struct {
	Base string `json:"base"`
	colour.BadgeTriple
}

type badgeOptions struct {
	white   string
	black   string
	preview bool
	label   string
}

func newBadgeCmd(a *app) *cobra.Command {
	opts := &badgeOptions{}

	cmd := &cobra.Command{
		Use:   "badge <colour>...",
		Short: "Derive badge colours, including a stroke",
		Long: `Derive badge styling for each colour.

Badges keep their own background up to lightness 99 (derive falls back to white
above 95), take overridable white and black constants, report the border as a
hex colour and add a stroke matching the text colour.

The constants default to SWATCH_WHITE / SWATCH_BLACK, then #ffffff / #1f2937.

Examples:
  # Badge colours for a pale tint
  swatch badge f5f5f5

  # Override the text constants and preview in the terminal
  swatch badge --black '#000000' --preview 3b82f6 ffff00`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBadge(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.white, "white", "", "light constant (default from config, then #ffffff)")
	cmd.Flags().StringVar(&opts.black, "black", "", "dark constant (default from config, then #1f2937)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "draw each badge in the terminal")
	cmd.Flags().StringVar(&opts.label, "label", "", "preview label (default: the colour)")

	return cmd
}

// constants merges flag overrides over the configured constants.
func (o *badgeOptions) constants(base colour.Constants) colour.Constants {
	if o.white != "" {
		base.White = o.white
	}
	if o.black != "" {
		base.Black = o.black
	}
	return base
}

func (a *app) runBadge(cmd *cobra.Command, args []string, opts *badgeOptions) error {
	consts := opts.constants(a.config.Constants)

	toCheck := append([]string{}, args...)
	if opts.white != "" {
		toCheck = append(toCheck, opts.white)
	}
	if opts.black != "" {
		toCheck = append(toCheck, opts.black)
	}
	if err := a.validate(toCheck...); err != nil {
		return err
	}

	results := make([]badgeColours, 0, len(args))
	for _, base := range args {
		b := colour.DeriveBadge(base, consts)
		a.logger.Debug("derived badge", "base", base, "color", b.Color, "background", b.Background,
			"borderColor", b.BorderColor, "white", consts.White, "black", consts.Black)
		results = append(results, badgeColours{Base: base, BadgeTriple: b})
	}

	out := cmd.OutOrStdout()
	switch a.format {
	case formatJSON:
		return writeJSON(out, results)
	case formatCSS:
		for _, r := range results {
			if err := writeCSS(out, r.Base,
				cssDeclaration{"color", r.Color},
				cssDeclaration{"background", r.Background},
				cssDeclaration{"border-color", r.BorderColor},
				cssDeclaration{"stroke", r.Stroke},
			); err != nil {
				return err
			}
		}
		return nil
	}

	if opts.preview {
		renderer := lipgloss.NewRenderer(out)
		for _, r := range results {
			label := opts.label
			if label == "" {
				label = r.Base
			}
			style := renderer.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1)
			if !colour.DisableColourOutput {
				style = style.
					Foreground(lipgloss.Color(r.Color)).
					Background(lipgloss.Color(r.Background)).
					BorderForeground(lipgloss.Color(r.Stroke)).
					BorderBackground(lipgloss.Color(r.BorderColor))
			}
			if _, err := fmt.Fprintln(out, style.Render(label)); err != nil {
				return err
			}
		}
		return nil
	}

	table := newTripleTable(true)
	for _, r := range results {
		table.addTriple(r.Base, r.Triple, r.Stroke)
	}
	_, err := fmt.Fprint(out, table.Render())
	return err
}
