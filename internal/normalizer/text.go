// Package normalizer converts raw per-source exports into the canonical
// entity shapes and computes the match keys used for cross-source
// identity resolution.
package normalizer

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks (accents), and
// recomposes. "Café" becomes "Cafe".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText folds a string for matching: diacritics stripped, lowercased,
// internal whitespace runs collapsed to single spaces, ends trimmed of
// whitespace and trailing punctuation ("ACME INC." and "Acme Inc" collide).
// It is total: empty or absent input yields "".
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}

	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	folded = strings.Join(strings.Fields(strings.ToLower(folded)), " ")

	return strings.TrimRight(folded, ".,")
}

// CleanID renders a source identifier in canonical string form. Values that
// parse as floating-point numbers are truncated to their integer part and
// rendered as plain decimal strings, which unifies ids stored as integers,
// zero-padded strings, or floats ("42", "0042", "42.0" all become "42").
// Anything else is returned trimmed; absent input yields "".
func CleanID(s string) string {
	t := strings.TrimSpace(s)
	if t == "" {
		return ""
	}

	// ParseFloat also accepts "NaN" and "Inf"; those are not ids and the
	// int64 conversion is undefined for them, so they pass through as text.
	if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}

	return t
}
