// Package util provides shared utility functions used across the application.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// StripHash removes the # prefix from a hex colour string.
// This is useful for formats that don't expect the hash prefix.
func StripHash(hex string) string {
	return strings.TrimPrefix(hex, "#")
}

// HexEncode encodes a string as four lowercase hex digits per UTF-16 code unit.
// "hi" encodes to "00680069".
func HexEncode(s string) string {
	var b strings.Builder
	for _, unit := range utf16.Encode([]rune(s)) {
		fmt.Fprintf(&b, "%04x", unit)
	}
	return b.String()
}

// HexDecode reverses HexEncode. Input is consumed in groups of up to four digits;
// a group that fails to parse decodes to U+0000.
func HexDecode(s string) string {
	units := make([]uint16, 0, (len(s)+3)/4)
	for i := 0; i < len(s); i += 4 {
		end := min(i+4, len(s))
		v, err := strconv.ParseUint(s[i:end], 16, 16)
		if err != nil {
			v = 0
		}
		units = append(units, uint16(v))
	}
	return string(utf16.Decode(units))
}
