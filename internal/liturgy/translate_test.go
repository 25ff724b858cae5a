package liturgy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTranslator(t *testing.T) {
	tr, err := DefaultTranslator("")
	if err != nil {
		t.Fatalf("DefaultTranslator() error = %v", err)
	}

	if tr.Len() < 400 {
		t.Errorf("built-in table has %d entries, expected several hundred", tr.Len())
	}

	tests := []struct {
		in   string
		want string
	}{
		{"Narodzenie Pańskie", "25 grudnia - Uroczystość Narodzenia Pańskiego"},
		{"I Niedziela Adwentu", "1 Niedziela Adwentu"},
		{"Czwartek I tygodnia Adwentu", "1 Czwartek Adwentu"},
		{"Wniebowzięcie Najświętszej Maryi Panny", "15 sierpnia - Uroczystość Wniebowzięcia NMP"},
		// Absent keys pass through untouched
		{"Nieznane święto", "Nieznane święto"},
		{MarianFeast, MarianFeast},
		// No case or diacritic folding
		{"narodzenie pańskie", "narodzenie pańskie"},
		{"Narodzenie Panskie", "Narodzenie Panskie"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := tr.Translate(tt.in); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultTranslator_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	content := "\"Narodzenie Pańskie\": \"Boże Narodzenie\"\n\"Nowy wpis\": \"Nowa nazwa\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing override: %v", err)
	}

	tr, err := DefaultTranslator(path)
	if err != nil {
		t.Fatalf("DefaultTranslator(%q) error = %v", path, err)
	}

	if got := tr.Translate("Narodzenie Pańskie"); got != "Boże Narodzenie" {
		t.Errorf("override not applied, got %q", got)
	}
	if got := tr.Translate("Nowy wpis"); got != "Nowa nazwa" {
		t.Errorf("new entry not added, got %q", got)
	}
	if got := tr.Translate("I Niedziela Adwentu"); got != "1 Niedziela Adwentu" {
		t.Errorf("built-in entry lost, got %q", got)
	}
}

func TestDefaultTranslator_OverrideErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := DefaultTranslator(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing override file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("- not\n- a\n- mapping\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := DefaultTranslator(bad); err == nil {
		t.Error("expected error for a YAML list")
	}
}

func TestParseTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"empty document", "", 0, false},
		{"two entries", "a: b\n\"Św. Józefa\": \"19 marca\"\n", 2, false},
		{"duplicate key", "a: b\na: c\n", 0, true},
		{"not a mapping", "just a string", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseTable(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTable() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && len(table) != tt.want {
				t.Errorf("ParseTable() returned %d entries, want %d", len(table), tt.want)
			}
		})
	}
}

func TestNewTranslator_LaterTablesWin(t *testing.T) {
	tr := NewTranslator(
		map[string]string{"a": "1", "b": "2"},
		map[string]string{"b": "3"},
	)

	if got := tr.Translate("a"); got != "1" {
		t.Errorf("Translate(a) = %q, want 1", got)
	}
	if got := tr.Translate("b"); got != "3" {
		t.Errorf("Translate(b) = %q, want 3", got)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		want      string
	}{
		{MarianFeast, "20250804", "Najświętszej Maryi Panny (04-08)"},
		{MarianFeast, "20251122", "Najświętszej Maryi Panny (22-11)"},
		{MarianFeast, "2025", MarianFeast},
		{"Narodzenie Pańskie", "20251225", "Narodzenie Pańskie"},
		{"Najświętszej Maryi Panny, Matki Kościoła", "20250609", "Najświętszej Maryi Panny, Matki Kościoła"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := DisplayName(tt.name, tt.startDate); got != tt.want {
				t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.name, tt.startDate, got, tt.want)
			}
		})
	}
}
