// Package width converts between full-width and half-width ASCII variants.
//
// The full-width forms block U+FF01..U+FF5E mirrors printable ASCII
// U+0021..U+007E at a fixed offset, and the ideographic space U+3000 pairs
// with the ASCII space. Conversion in either direction is a per-rune shift;
// runes outside the mapped ranges pass through unchanged.
package width

import (
	"strings"
	"unicode/utf8"
)

const (
	halfFirst = 0x0021
	halfLast  = 0x007E
	fullFirst = 0xFF01
	fullLast  = 0xFF5E

	// offset between a full-width form and its ASCII counterpart.
	offset = fullFirst - halfFirst

	halfSpace = 0x0020
	fullSpace = 0x3000
)

// shift moves r by delta, falling back to r if the result would not be a
// valid Unicode scalar value. Not reachable for the fixed ranges above,
// kept as a safety net.
func shift(r, delta rune) rune {
	s := r + delta
	if !utf8.ValidRune(s) {
		return r
	}
	return s
}

// ToHalfWidth converts full-width ASCII variants and the ideographic space
// to their half-width equivalents.
func ToHalfWidth(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		switch {
		case r == fullSpace:
			sb.WriteRune(halfSpace)
		case r >= fullFirst && r <= fullLast:
			sb.WriteRune(shift(r, -offset))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ToFullWidth converts printable ASCII and the ASCII space to their
// full-width equivalents.
func ToFullWidth(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 3)
	for _, r := range text {
		switch {
		case r == halfSpace:
			sb.WriteRune(fullSpace)
		case r >= halfFirst && r <= halfLast:
			sb.WriteRune(shift(r, offset))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
