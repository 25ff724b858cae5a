package liturgy

import (
	"regexp"
	"strings"
)

// Rank labels
const (
	TypeSolemnity        = "Uroczystość"
	TypeFeast            = "Święto"
	TypeMemorial         = "Wspomnienie obowiązkowe"
	TypeOptionalMemorial = "Wspomnienie dowolne"
)

// Colour labels
const (
	ColorWhite   = "Biały"
	ColorRed     = "Czerwony"
	ColorGreen   = "Zielony"
	ColorViolet  = "Fioletowy"
	ColorRose    = "Różowy"
	ColorUnknown = "Nieznany"
)

// Colour glyphs used by the feed
const (
	GlyphWhite     = "\u26AA"     // ⚪
	GlyphRed       = "\U0001F534" // 🔴
	GlyphGreen     = "\U0001F7E2" // 🟢
	GlyphViolet    = "\U0001F7E3" // 🟣
	GlyphRose      = "\U0001F497" // 💗
	GlyphPinkHeart = "\U0001FA77" // 🩷
)

var (
	rankCode    = regexp.MustCompile(`(?s)\[(.*?)\]`)
	rankToken   = regexp.MustCompile(`(?s)\[.*?\]\s*`)
	whitespaces = regexp.MustCompile(`\s+`)
)

var rankLabels = map[string]string{
	"U":  TypeSolemnity,
	"Ś":  TypeFeast,
	"W":  TypeMemorial,
	"w":  TypeOptionalMemorial,
	"w*": TypeOptionalMemorial,
}

// colorGlyphs is checked in order; the first glyph present wins.
var colorGlyphs = []struct {
	glyph string
	label string
}{
	{GlyphWhite, ColorWhite},
	{GlyphRed, ColorRed},
	{GlyphGreen, ColorGreen},
	{GlyphViolet, ColorViolet},
	{GlyphRose, ColorRose},
	{GlyphPinkHeart, ColorRose},
}

var glyphStripper = strings.NewReplacer(
	GlyphWhite, "",
	GlyphRed, "",
	GlyphGreen, "",
	GlyphViolet, "",
	GlyphRose, "",
	GlyphPinkHeart, "",
	"?", "",
)

// ParseType returns the rank label for the first bracketed code in the
// summary, or "" when there is none or the code is not recognised.
func ParseType(summary string) string {
	m := rankCode.FindStringSubmatch(summary)
	if m == nil {
		return ""
	}
	return rankLabels[m[1]]
}

// ParseColor returns the colour label for the first known glyph found in
// the summary, or ColorUnknown.
func ParseColor(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ColorUnknown
	}
	for _, c := range colorGlyphs {
		if strings.Contains(summary, c.glyph) {
			return c.label
		}
	}
	return ColorUnknown
}

// ParseName strips rank tokens, colour glyphs and '?' from the summary and
// normalises whitespace.
func ParseName(summary string) string {
	name := rankToken.ReplaceAllString(summary, "")
	name = glyphStripper.Replace(name)
	name = whitespaces.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
