package liturgy

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MarianFeast is the generic title the feed uses for several different
// memorials of Mary. DisplayName tells them apart by date.
const MarianFeast = "Najświętszej Maryi Panny"

//go:embed translations.yaml
var defaultTranslations []byte

// Translator maps cleaned feed names to their display names.
// It is read-only after construction.
type Translator struct {
	names map[string]string
}

// NewTranslator builds a translator from one or more tables. Later tables
// override earlier ones.
func NewTranslator(tables ...map[string]string) *Translator {
	names := make(map[string]string)
	for _, table := range tables {
		for k, v := range table {
			names[k] = v
		}
	}
	return &Translator{names: names}
}

// DefaultTranslator returns a translator over the built-in table, optionally
// overlaid with the table in overridePath.
func DefaultTranslator(overridePath string) (*Translator, error) {
	base, err := ParseTable(bytes.NewReader(defaultTranslations))
	if err != nil {
		return nil, fmt.Errorf("parsing built-in translations: %w", err)
	}

	if overridePath == "" {
		return NewTranslator(base), nil
	}

	f, err := os.Open(overridePath)
	if err != nil {
		return nil, fmt.Errorf("opening translations: %w", err)
	}
	defer f.Close()

	extra, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", overridePath, err)
	}

	return NewTranslator(base, extra), nil
}

// ParseTable decodes a YAML mapping of name to display name.
// Duplicate keys are rejected by the decoder.
func ParseTable(r io.Reader) (map[string]string, error) {
	table := make(map[string]string)
	if err := yaml.NewDecoder(r).Decode(&table); err != nil {
		if errors.Is(err, io.EOF) {
			return table, nil
		}
		return nil, err
	}
	return table, nil
}

// Translate returns the display name for name, or name itself when the
// table has no entry. Matching is exact.
func (t *Translator) Translate(name string) string {
	if display, ok := t.names[name]; ok {
		return display
	}
	return name
}

// Len reports the number of entries in the table.
func (t *Translator) Len() int {
	return len(t.names)
}

// DisplayName appends " (DD-MM)" to the generic Marian title using the raw
// YYYYMMDD start date. Any other name is returned unchanged.
func DisplayName(name, startDate string) string {
	if name != MarianFeast || len(startDate) != 8 {
		return name
	}
	return fmt.Sprintf("%s (%s-%s)", name, startDate[6:8], startDate[4:6])
}
