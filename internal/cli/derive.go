package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// derivedColours is the JSON shape for one derive result.
type derivedColours struct {
	Base string `json:"base"`
	colour.Triple
}

func newDeriveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "derive <colour>...",
		Short: "Derive text, background and border colours",
		Long: `Derive the background, a legible text colour and a border for each colour.

Near-white colours (lightness above 95) fall back to a white background. Text is
dark (#1f2937) when the colour is light or white text would not read; otherwise
white. Dark text gets a border ten lightness points darker than the background,
printed as a CSS hsl() value.

Examples:
  # Derive colours for a brand orange
  swatch derive ff5733

  # Several colours as JSON
  swatch derive -f json '#ffffff' '#000' '#3b82f6'

  # CSS declarations
  swatch derive -f css '#ffff00'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDerive(cmd, args)
		},
	}
}

func (a *app) runDerive(cmd *cobra.Command, args []string) error {
	if err := a.validate(args...); err != nil {
		return err
	}

	results := make([]derivedColours, 0, len(args))
	for _, base := range args {
		t := colour.Derive(base)
		a.logger.Debug("derived", "base", base, "color", t.Color, "background", t.Background, "borderColor", t.BorderColor)
		results = append(results, derivedColours{Base: base, Triple: t})
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
			); err != nil {
				return err
			}
		}
		return nil
	default:
		table := newTripleTable(false)
		for _, r := range results {
			table.addTriple(r.Base, r.Triple, "")
		}
		_, err := fmt.Fprint(out, table.Render())
		return err
	}
}

// tripleTable renders triples with an optional stroke column and live preview.
type tripleTable struct {
	*Table
	stroke  bool
	preview bool
}

func newTripleTable(stroke bool) *tripleTable {
	headers := []string{"BASE", "COLOR", "BACKGROUND", "BORDER"}
	if stroke {
		headers = append(headers, "STROKE")
	}
	preview := !colour.DisableColourOutput
	if preview {
		headers = append(headers, "PREVIEW")
	}
	return &tripleTable{Table: NewTable(headers...), stroke: stroke, preview: preview}
}

func (t *tripleTable) addTriple(base string, triple colour.Triple, stroke string) {
	row := []string{base, triple.Color, triple.Background, triple.BorderColor}
	if t.stroke {
		row = append(row, stroke)
	}
	if t.preview {
		row = append(row, colour.TriplePreview(triple, "Aa", 6))
	}
	t.AddRow(row...)
}
