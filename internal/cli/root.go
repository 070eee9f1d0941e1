// Package cli provides the command-line interface for Swatch.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/security"
	"github.com/jmylchreest/swatch/internal/version"
)

// app carries state shared by every subcommand once the root pre-run has resolved it.
type app struct {
	config config.Config
	logger hclog.Logger

	envFile  string
	verbose  bool
	quiet    bool
	strict   bool
	noColour bool
	format   outputFormat
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger(), format: formatText}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Derive legible text, background and border colours",
		Long: `Swatch takes an arbitrary brand or data colour and works out how to render
readable text on top of it: the background to use, a foreground that stays legible,
and a border that remains visible.

Colours are hex strings with or without a leading '#', in 3 or 6 digit form.
Malformed colours render as black unless --strict is given.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&a.strict, "strict", false, "reject malformed colours instead of rendering them as black")
	flags.BoolVar(&a.noColour, "no-colour", false, "disable ANSI colour previews")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file with SWATCH_* settings")
	flags.VarP(&a.format, "format", "f", "output format (text, json, css)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDeriveCmd(a),
		newBadgeCmd(a),
		newConvertCmd(a),
		newContrastCmd(a),
		newRenderCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup resolves configuration, the logger and terminal capabilities.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewBuilder().
		WithDotEnv(a.envFile).
		WithEnvConfig().
		Build()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.config = cfg

	if a.strict {
		a.config.Strict = true
	}

	if !cmd.Flags().Changed("format") {
		if err := a.format.Set(cfg.Format); err != nil {
			return fmt.Errorf("invalid %s: %w", config.EnvFormat, err)
		}
	}

	level := hclog.LevelFromString(cfg.LogLevel)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: cmd.ErrOrStderr(),
		Level:  level,
	})

	colour.DisableColourOutput = a.noColour || !isTerminal(cmd.OutOrStdout())

	a.logger.Debug("configuration resolved",
		"format", a.format.String(),
		"strict", a.config.Strict,
		"white", a.config.Constants.White,
		"black", a.config.Constants.Black,
	)

	return nil
}

// validate applies the opt-in strict check to user supplied colours.
func (a *app) validate(colours ...string) error {
	if !a.config.Strict {
		return nil
	}
	if err := security.ValidateHexColours(colours...); err != nil {
		return fmt.Errorf("strict mode: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
