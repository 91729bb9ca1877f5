package normalizer

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"accents and whitespace", "Café   Müller ", "cafe muller"},
		{"already clean", "acme inc", "acme inc"},
		{"case folding and trailing punctuation", "ACME INC.", "acme inc"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"tabs and newlines collapse", "a\tb\n c", "a b c"},
		{"spanish accents", "Pacífico Sur", "pacifico sur"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeText(tc.input); got != tc.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeText_StableAcrossSources(t *testing.T) {
	// Two renderings of the same company name from different exports must
	// collide on the same match key.
	a := NormalizeText("Acme Inc")
	b := NormalizeText("ACME INC.")

	if a != b || a != "acme inc" {
		t.Errorf("match keys differ: %q vs %q", a, b)
	}
}

func TestCleanID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"float form", "42.0", "42"},
		{"plain integer", "42", "42"},
		{"zero padded", "0042", "42"},
		{"alphanumeric passes through", "ABC-7", "ABC-7"},
		{"trimmed", "  ALFKI ", "ALFKI"},
		{"empty", "", ""},
		{"whitespace only", "  ", ""},
		{"fraction discarded", "7.9", "7"},
		{"nan passes through", "NaN", "NaN"},
		{"infinity passes through", "Inf", "Inf"},
		{"negative infinity passes through", "-Inf", "-Inf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CleanID(tc.input); got != tc.want {
				t.Errorf("CleanID(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseDates(t *testing.T) {
	if _, ok := ParseSQLDate("2024-01-04 00:00:00"); !ok {
		t.Error("expected ISO timestamp to parse for sql source")
	}

	if _, ok := ParseSQLDate("not a date"); ok {
		t.Error("expected unparsable value to report absent, not error")
	}

	if _, ok := ParseSQLDate(""); ok {
		t.Error("expected empty value to report absent")
	}

	d, ok := ParseAccessDate("15/01/2024")
	if !ok {
		t.Fatal("expected day-first date to parse for access source")
	}

	if d.Day() != 15 || d.Month() != 1 {
		t.Errorf("day-first parse wrong: got %v", d)
	}

	// The warehouse stage re-reads processed files, which are ISO.
	if _, ok := ParseAccessDate("2024-01-15"); !ok {
		t.Error("expected ISO date to parse for processed access files")
	}
}
