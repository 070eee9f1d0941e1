package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/render"
)

type renderOptions struct {
	output string
	label  string
	badge  bool
}

func newRenderCmd(a *app) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <colour>",
		Short: "Render derived colours as a PNG badge",
		Long: `Render the derived colours as a PNG: the border colour as a frame, the
background inside it and the label drawn in the text colour.

Examples:
  # Write a badge for a brand colour
  swatch render ff5733 -o brand.png

  # Use badge styling and a custom label, writing to stdout
  swatch render --badge --label beta f5f5f5 -o - > beta.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "swatch.png", "output file ('-' for stdout)")
	cmd.Flags().StringVar(&opts.label, "label", "", "badge label (default: the normalised colour)")
	cmd.Flags().BoolVar(&opts.badge, "badge", false, "use badge styling with the configured constants")

	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args []string, opts *renderOptions) error {
	base := args[0]
	if err := a.validate(base); err != nil {
		return err
	}

	triple := colour.Derive(base)
	if opts.badge {
		triple = colour.DeriveBadge(base, a.config.Constants).Triple
	}

	label := opts.label
	if label == "" {
		label = colour.NormaliseHex(base)
	}

	var w io.Writer
	if opts.output == "-" {
		w = cmd.OutOrStdout()
	} else {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := render.WritePNG(w, triple, render.Options{Label: label}); err != nil {
		return fmt.Errorf("failed to render %s: %w", base, err)
	}

	a.logger.Info("rendered badge", "base", base, "output", opts.output, "background", triple.Background)
	return nil
}
