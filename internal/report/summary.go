// Package report renders the human-readable run summaries the pipeline
// commands print after a successful run.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"salesdw/internal/kpi"
	"salesdw/internal/normalizer"
	"salesdw/internal/warehouse"
)

// RenderTable renders rows as a width-aligned plain-text table. Cell widths
// are measured with runewidth so wide characters in company or employee
// names keep columns aligned.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var sb strings.Builder

	writeRow := func(cells []string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}

			sb.WriteString("  ")
			sb.WriteString(runewidth.FillRight(cell, w))
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = strings.Repeat("-", w)
	}

	writeRow(sep)

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// RenderBuildStats renders the warehouse build summary: per-source record
// counts, dimension and fact sizes, dropped-orphan counts, and the covered
// date range.
func RenderBuildStats(st *warehouse.BuildStats) string {
	var sb strings.Builder

	sb.WriteString("Warehouse build summary\n")
	sb.WriteString(RenderTable(
		[]string{"entity", "sql", "access", "merged"},
		[][]string{
			{"customers", itoa(st.SQLCustomers), itoa(st.AccessCustomers), itoa(st.DimCustomers)},
			{"employees", itoa(st.SQLEmployees), itoa(st.AccessEmployees), itoa(st.DimEmployees)},
			{"orders", itoa(st.SQLOrders), itoa(st.AccessOrders), itoa(st.Facts)},
		},
	))

	sb.WriteString(fmt.Sprintf("\nOrphaned orders dropped: %d (missing customer: %d, missing employee: %d)\n",
		st.DroppedRows, st.DroppedCustomerRef, st.DroppedEmployeeRef))
	sb.WriteString(fmt.Sprintf("Total revenue: %s\n", st.TotalRevenue.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Time dimension: %d days\n", st.TimeRows))

	if st.HasDateRange {
		sb.WriteString(fmt.Sprintf("Date range: %s to %s\n",
			st.FirstDate.Format(normalizer.DateISO), st.LastDate.Format(normalizer.DateISO)))
	} else {
		sb.WriteString("Date range: none (no dated orders)\n")
	}

	return sb.String()
}

// RenderKPI renders the global summary block plus the top rows of each
// grouped table. topN of 0 or less renders every row.
func RenderKPI(res kpi.Result, topN int) string {
	var sb strings.Builder

	sb.WriteString("Global performance\n")
	sb.WriteString(fmt.Sprintf("  Total orders:  %d\n", res.Global.TotalOrders))
	sb.WriteString(fmt.Sprintf("  Total revenue: %s\n", res.Global.TotalRevenue.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("  Delivered:     %d\n", res.Global.Delivered))
	sb.WriteString(fmt.Sprintf("  Pending:       %d\n", res.Global.NotDelivered))
	sb.WriteString(fmt.Sprintf("  Delivery rate: %.2f%%\n", res.Global.DeliveryRatePct))

	sections := []struct {
		title    string
		groupCol string
		rows     []kpi.GroupSummary
	}{
		{"Orders by country", "country", res.ByCountry},
		{"Orders by employee", "employee", res.ByEmployee},
		{"Orders by month", "month", res.ByMonth},
	}

	for _, sec := range sections {
		rows := sec.rows
		if topN > 0 && len(rows) > topN {
			rows = rows[:topN]
		}

		records := make([][]string, len(rows))
		for i, g := range rows {
			records[i] = []string{g.Key, itoa(g.TotalOrders), itoa(g.Delivered), itoa(g.NotDelivered), g.TotalRevenue.StringFixed(2)}
		}

		sb.WriteString("\n" + sec.title + "\n")
		sb.WriteString(RenderTable([]string{sec.groupCol, "total", "delivered", "pending", "revenue"}, records))
	}

	return sb.String()
}

func itoa(n int) string {
	return fmt.Sprintf("%d", n)
}
