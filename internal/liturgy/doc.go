// Package liturgy turns raw calendar entries into liturgical events.
//
// A feed summary such as "[U] Narodzenie Pańskie ⚪" carries three things:
// the rank code in brackets, the liturgical colour as a coloured-circle
// glyph, and the celebration name. This package separates them, maps the
// name to its display form through a static translation table, and adds
// the Sunday (A/B/C) and weekday (I/II) lectionary cycles for the date.
package liturgy
