package liturgy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/kalendarz/internal/calendar"
	"github.com/pfrederiksen/kalendarz/internal/logger"
)

const startDateLayout = "20060102"

// Event is one celebration ready for export.
type Event struct {
	Name         string
	Date         string // DD-MM-YYYY
	SundayCycle  string // A, B or C
	WeekdayCycle string // 1 or 2
	Type         string // rank label or ""
	Color        string
}

// ParseStartDate parses a whole-day YYYYMMDD start date. A day past the end
// of its month (20250230) resolves to the month's last day; a month outside
// 1-12 or a day outside 1-31 is an error.
func ParseStartDate(s string) (time.Time, error) {
	if len(s) != len(startDateLayout) {
		return time.Time{}, fmt.Errorf("invalid start date %q: want YYYYMMDD", s)
	}
	year, errY := strconv.Atoi(s[0:4])
	month, errM := strconv.Atoi(s[4:6])
	day, errD := strconv.Atoi(s[6:8])
	if err := errors.Join(errY, errM, errD); err != nil || strings.ContainsAny(s, "+-") {
		return time.Time{}, fmt.Errorf("invalid start date %q: want YYYYMMDD", s)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid start date %q: month %d out of range", s, month)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid start date %q: day %d out of range", s, day)
	}

	// Day 0 of the following month is the last day of this one
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate rewrites YYYYMMDD as DD-MM-YYYY. Other lengths are returned
// unchanged.
func FormatDate(s string) string {
	if len(s) != 8 {
		return s
	}
	return s[6:8] + "-" + s[4:6] + "-" + s[0:4]
}

// Converter builds events from raw feed entries.
type Converter struct {
	translator *Translator
}

// NewConverter returns a Converter using t for name translation.
func NewConverter(t *Translator) *Converter {
	return &Converter{translator: t}
}

// Convert turns one raw entry into an Event. The boolean is false when the
// cleaned name is blank and the entry should be skipped.
func (c *Converter) Convert(raw calendar.RawEvent) (Event, bool, error) {
	date, err := ParseStartDate(raw.StartDate)
	if err != nil {
		return Event{}, false, err
	}

	name := c.translator.Translate(ParseName(raw.Summary))
	name = DisplayName(name, raw.StartDate)
	if strings.TrimSpace(name) == "" {
		return Event{}, false, nil
	}

	cycles := CyclesFor(date)

	return Event{
		Name:         name,
		Date:         FormatDate(raw.StartDate),
		SundayCycle:  cycles.Sunday,
		WeekdayCycle: cycles.Weekday,
		Type:         ParseType(raw.Summary),
		Color:        ParseColor(raw.Summary),
	}, true, nil
}

// ConvertICS extracts and converts every event of an ICS document, keeping
// feed order. It stops at the first entry with an unparseable start date.
func (c *Converter) ConvertICS(ics string) ([]Event, error) {
	events := make([]Event, 0)
	var convErr error

	calendar.ExtractFunc(ics, func(raw calendar.RawEvent) {
		if convErr != nil {
			return
		}

		evt, ok, err := c.Convert(raw)
		if err != nil {
			convErr = fmt.Errorf("event %q: %w", raw.Summary, err)
			return
		}
		if !ok {
			logger.IncrCounter("events.blank_name")
			logger.Debug("skipping event with blank name", logger.Fields{
				"start_date": raw.StartDate,
				"summary":    raw.Summary,
			})
			return
		}

		logger.IncrCounter("events.emitted")
		events = append(events, evt)
	})

	if convErr != nil {
		return nil, convErr
	}

	return events, nil
}
