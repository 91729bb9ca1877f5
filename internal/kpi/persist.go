package kpi

import (
	"fmt"
	"path/filepath"
	"strconv"

	"salesdw/internal/tabular"
)

// Persisted KPI file names.
const (
	FileByCountry  = "orders_by_country.csv"
	FileByEmployee = "orders_by_employee.csv"
	FileByMonth    = "orders_by_month.csv"
)

// WriteSummaries persists the three grouped KPI tables under dir. Each
// carries its grouping column plus the shared aggregate columns.
func WriteSummaries(dir string, res Result) error {
	tables := []struct {
		file     string
		groupCol string
		rows     []GroupSummary
	}{
		{FileByCountry, "country", res.ByCountry},
		{FileByEmployee, "emp_norm", res.ByEmployee},
		{FileByMonth, "month", res.ByMonth},
	}

	for _, t := range tables {
		header := []string{t.groupCol, "total_orders", "delivered", "not_delivered", "total_revenue"}

		records := make([][]string, len(t.rows))
		for i, g := range t.rows {
			records[i] = []string{
				g.Key,
				strconv.Itoa(g.TotalOrders),
				strconv.Itoa(g.Delivered),
				strconv.Itoa(g.NotDelivered),
				g.TotalRevenue.String(),
			}
		}

		if err := tabular.WriteTable(filepath.Join(dir, t.file), header, records); err != nil {
			return fmt.Errorf("%s: %w", t.file, err)
		}
	}

	return nil
}
