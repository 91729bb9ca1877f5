package normalizer

import (
	"strings"
	"time"
)

// DateISO is the layout used for every date the pipeline persists.
const DateISO = "2006-01-02"

// sqlDateLayouts covers the relational export, which writes ISO-style
// timestamps.
var sqlDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	DateISO,
	"1/2/2006",
}

// accessDateLayouts covers the desktop-database export, which writes
// day-first dates. ISO layouts come last so re-reading our own processed
// files also works.
var accessDateLayouts = []string{
	"02/01/2006 15:04:05",
	"2/1/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"2006-01-02 15:04:05",
	DateISO,
}

// ParseSQLDate parses a date string from the relational export. Unparsable
// or empty values report ok=false rather than an error; missing dates are a
// normal condition (unshipped orders).
func ParseSQLDate(s string) (time.Time, bool) {
	return parseDate(s, sqlDateLayouts)
}

// ParseAccessDate parses a date string from the desktop-database export.
func ParseAccessDate(s string) (time.Time, bool) {
	return parseDate(s, accessDateLayouts)
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}
