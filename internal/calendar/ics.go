package calendar

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	beginEvent    = "BEGIN:VEVENT"
	endEvent      = "END:VEVENT"
	dtstartPrefix = "DTSTART;VALUE=DATE:"
	summaryPrefix = "SUMMARY:"
)

var lineBreak = regexp.MustCompile(`\r\n|\n|\r`)

// RawEvent is one VEVENT block as read from the feed, before any cleanup.
type RawEvent struct {
	StartDate string // YYYYMMDD
	Summary   string // may still contain rank codes, colour glyphs and '?'
}

// Extract returns every complete VEVENT in the document, in source order.
// Blocks missing a start date or a summary are skipped.
func Extract(ics string) []RawEvent {
	events := make([]RawEvent, 0)
	ExtractFunc(ics, func(evt RawEvent) {
		events = append(events, evt)
	})
	return events
}

// ExtractFunc scans the document and calls fn for each complete VEVENT.
//
// Only whole-day DTSTART and SUMMARY are read. A SUMMARY may be folded over
// several lines; every following line starting with a space is appended
// with its leading whitespace removed.
func ExtractFunc(ics string, fn func(RawEvent)) {
	lines := lineBreak.Split(ics, -1)

	inEvent := false
	var summary, startDate string

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case line == beginEvent:
			inEvent = true
			summary, startDate = "", ""

		case line == endEvent:
			// Accumulators survive the end marker, so a repeated END:VEVENT
			// emits the last block again.
			inEvent = false
			if startDate != "" && summary != "" {
				fn(RawEvent{StartDate: startDate, Summary: summary})
			}

		case !inEvent:
			// outside a block

		case strings.HasPrefix(line, dtstartPrefix):
			startDate = strings.TrimPrefix(line, dtstartPrefix)

		case strings.HasPrefix(line, summaryPrefix):
			var b strings.Builder
			b.WriteString(strings.TrimPrefix(line, summaryPrefix))
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], " ") {
				i++
				b.WriteString(strings.TrimLeftFunc(lines[i], unicode.IsSpace))
			}
			summary = b.String()
		}
	}
}
