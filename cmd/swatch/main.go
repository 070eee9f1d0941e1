// Swatch - legible colours from a single base colour
//
// Swatch derives a background, a readable text colour and a visible border
// from any hex colour, for rendering brand or data colours in UI components.
package main

import "github.com/jmylchreest/swatch/internal/cli"

func main() {
	cli.Execute()
}
