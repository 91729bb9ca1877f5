package warehouse

import (
	"time"

	"salesdw/internal/models"
)

// BuildTimeDimension returns one row per calendar day spanning the earliest
// to the latest order date in the fact table. Facts without a parsable date
// do not contribute to the range; an all-dateless fact table yields an
// empty dimension.
func BuildTimeDimension(facts []models.FactOrder) []models.TimeRow {
	var min, max time.Time

	found := false

	for _, f := range facts {
		if !f.HasDate {
			continue
		}

		day := f.Date.Truncate(24 * time.Hour)

		if !found {
			min, max = day, day
			found = true

			continue
		}

		if day.Before(min) {
			min = day
		}

		if day.After(max) {
			max = day
		}
	}

	if !found {
		return nil
	}

	var rows []models.TimeRow
	for d := min; !d.After(max); d = d.AddDate(0, 0, 1) {
		rows = append(rows, models.TimeRow{Date: d, Year: d.Year()})
	}

	return rows
}
