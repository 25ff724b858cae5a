package liturgy

import "testing"

func TestParseType(t *testing.T) {
	tests := []struct {
		summary string
		want    string
	}{
		{"[U] Narodzenie Pańskie ⚪", TypeSolemnity},
		{"Nawrócenie św. Pawła [Ś] 🔴", TypeFeast},
		{"[W] Św. Mikołaja", TypeMemorial},
		{"[w] Św. Ambrożego", TypeOptionalMemorial},
		{"[w*] Św. Jana Damasceńskiego", TypeOptionalMemorial},
		{"... [x] ...", ""},
		{"[] pusty kod", ""},
		{"[u] wielkość liter ma znaczenie", ""},
		{"no brackets", ""},
		{"", ""},
		{"[x] [U] only the first bracket counts", ""},
		{"[U] [x] first wins", TypeSolemnity},
	}

	for _, tt := range tests {
		t.Run(tt.summary, func(t *testing.T) {
			if got := ParseType(tt.summary); got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.summary, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    string
	}{
		{"blank", "", ColorUnknown},
		{"whitespace only", "   \t", ColorUnknown},
		{"no glyph", "[U] Narodzenie Pańskie", ColorUnknown},
		{"white", "[U] Narodzenie Pańskie " + GlyphWhite, ColorWhite},
		{"red", GlyphRed + " Św. Szczepana", ColorRed},
		{"green", "Niedziela zwykła " + GlyphGreen, ColorGreen},
		{"violet", GlyphViolet + " I Niedziela Adwentu", ColorViolet},
		{"rose heart", "III Niedziela Adwentu " + GlyphRose, ColorRose},
		{"pink heart", "IV Niedziela Wielkiego Postu " + GlyphPinkHeart, ColorRose},
		{"checked order beats position", GlyphGreen + " x " + GlyphWhite, ColorWhite},
		{"red before violet", GlyphViolet + GlyphRed, ColorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.summary); got != tt.want {
				t.Errorf("ParseColor(%q) = %q, want %q", tt.summary, got, tt.want)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		want    string
	}{
		{"rank and glyph", "[U] Narodzenie Pańskie " + GlyphWhite, "Narodzenie Pańskie"},
		{"question marks", "[w] Najświętszej Maryi Panny ?" + GlyphWhite, "Najświętszej Maryi Panny"},
		{"rank in the middle", "Św. Józefa [Ś]  Robotnika", "Św. Józefa Robotnika"},
		{"several ranks", "[U] [w*] Wszystkich Świętych", "Wszystkich Świętych"},
		{"all six glyphs", GlyphWhite + GlyphRed + GlyphGreen + GlyphViolet + GlyphRose + GlyphPinkHeart + " Dzień", "Dzień"},
		{"whitespace collapse", "  I   Niedziela \t Adwentu  ", "I Niedziela Adwentu"},
		{"empty", "", ""},
		{"only decoration", "[U] " + GlyphWhite + " ?", ""},
		{"unknown glyph kept", "Dzień ⭐", "Dzień ⭐"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseName(tt.summary)
			if got != tt.want {
				t.Errorf("ParseName(%q) = %q, want %q", tt.summary, got, tt.want)
			}
			if again := ParseName(got); again != got {
				t.Errorf("ParseName is not idempotent: %q -> %q", got, again)
			}
		})
	}
}
