package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// outputFormat is the --format flag value.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatCSS  outputFormat = "css"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON, formatCSS:
		*f = v
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, css)", s)
	}
}

func (f *outputFormat) Type() string {
	return "format"
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	return nil
}

// cssDeclaration is one "property: value;" line of a CSS rule.
type cssDeclaration struct {
	property string
	value    string
}

// writeCSS writes a commented block of declarations for one colour.
func writeCSS(w io.Writer, comment string, decls ...cssDeclaration) error {
	var b strings.Builder
	fmt.Fprintf(&b, "/* %s */\n", comment)
	for _, d := range decls {
		fmt.Fprintf(&b, "%s: %s;\n", d.property, d.value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
