package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/kalendarz/internal/liturgy"
)

// Variant selects which fields are written
type Variant string

const (
	// Advanced includes the Sunday and weekday lectionary cycles
	Advanced Variant = "advanced"
	// Simple omits the cycle fields
	Simple Variant = "simple"
)

// Format selects the JSON layout
type Format string

const (
	FormatObject Format = "object"
	FormatList   Format = "list"
)

// listEntry is one element of the list format. Field order matches the
// object format.
type listEntry struct {
	Name         string `json:"nazwa"`
	Date         string `json:"data"`
	SundayCycle  string `json:"rok_litera,omitempty"`
	WeekdayCycle string `json:"rok_cyfra,omitempty"`
	Type         string `json:"typ"`
	Color        string `json:"kolor"`
}

// Write writes events in the given format and variant
func Write(w io.Writer, events []liturgy.Event, format Format, variant Variant) error {
	switch format {
	case FormatObject:
		_, err := io.WriteString(w, Encode(events, variant))
		return err
	case FormatList:
		return writeList(w, events, variant)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// Encode renders events as a JSON object keyed by name, in the given order.
// Names lose any backslashes and have quotes escaped; type and colour lose
// backslashes. Everything else is written verbatim as UTF-8.
func Encode(events []liturgy.Event, variant Variant) string {
	var b strings.Builder
	b.WriteString("{\n")

	for i, evt := range events {
		name := strings.ReplaceAll(stripBackslashes(evt.Name), `"`, `\"`)

		fmt.Fprintf(&b, "  \"%s\": {\n", name)
		fmt.Fprintf(&b, "    \"data\": \"%s\",\n", evt.Date)
		if variant != Simple {
			fmt.Fprintf(&b, "    \"rok_litera\": \"%s\",\n", evt.SundayCycle)
			fmt.Fprintf(&b, "    \"rok_cyfra\": \"%s\",\n", evt.WeekdayCycle)
		}
		fmt.Fprintf(&b, "    \"typ\": \"%s\",\n", stripBackslashes(evt.Type))
		fmt.Fprintf(&b, "    \"kolor\": \"%s\"\n", stripBackslashes(evt.Color))
		b.WriteString("  }")

		if i < len(events)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}

	b.WriteString("}")
	return b.String()
}

func writeList(w io.Writer, events []liturgy.Event, variant Variant) error {
	entries := make([]listEntry, len(events))
	for i, evt := range events {
		entries[i] = listEntry{
			Name:  evt.Name,
			Date:  evt.Date,
			Type:  evt.Type,
			Color: evt.Color,
		}
		if variant != Simple {
			entries[i].SundayCycle = evt.SundayCycle
			entries[i].WeekdayCycle = evt.WeekdayCycle
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func stripBackslashes(s string) string {
	return strings.ReplaceAll(s, `\`, "")
}
