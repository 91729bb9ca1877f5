package warehouse

import (
	"github.com/shopspring/decimal"

	"salesdw/internal/models"
)

// RevenueBySource holds each source's per-order revenue map, keyed by
// source tag then cleaned order id. Revenue is computed per source before
// the merge; if an order id accidentally collides across sources the maps
// stay separate, but a collision within one source is indistinguishable
// from a real duplicate (known limitation of the source data).
type RevenueBySource map[string]map[string]decimal.Decimal

// FactResult is the built fact table plus the drop accounting the run
// summary reports.
type FactResult struct {
	Rows []models.FactOrder

	// Orders dropped because a reference failed to resolve. A row missing
	// both references counts in both per-kind counters but only once in
	// DroppedRows.
	DroppedRows        int
	DroppedCustomerRef int
	DroppedEmployeeRef int
}

// TotalRevenue sums revenue over the surviving facts.
func (r FactResult) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, f := range r.Rows {
		total = total.Add(f.Revenue)
	}

	return total
}

// BuildFacts merges normalized orders from every source into the fact
// table. Each order picks up its source's line-item revenue (zero when no
// line items matched) and resolves customer and employee references to
// dimension surrogate keys. Orders that fail either resolution are dropped
// and counted; referential integrity to the dimensions is a hard invariant,
// so orphans never appear with null keys. Fact keys are dense and 1-based
// in concatenation order over the survivors.
func BuildFacts(orders []models.Order, revenue RevenueBySource, customerKeys, employeeKeys map[string]int) FactResult {
	var result FactResult

	for _, o := range orders {
		customerKey, customerOK := customerKeys[o.CustomerRef]
		employeeKey, employeeOK := employeeKeys[o.EmployeeRef]

		if !customerOK {
			result.DroppedCustomerRef++
		}

		if !employeeOK {
			result.DroppedEmployeeRef++
		}

		if !customerOK || !employeeOK {
			result.DroppedRows++
			continue
		}

		rev := decimal.Zero
		if bySource, ok := revenue[o.Source]; ok {
			if r, ok := bySource[o.ID]; ok {
				rev = r
			}
		}

		result.Rows = append(result.Rows, models.FactOrder{
			Key:         len(result.Rows) + 1,
			OrderID:     o.ID,
			Date:        o.Date,
			HasDate:     o.HasDate,
			Shipped:     o.Shipped,
			HasShipped:  o.HasShipped,
			Delivered:   o.Delivered,
			Source:      o.Source,
			CustomerRef: o.CustomerRef,
			EmployeeRef: o.EmployeeRef,
			Revenue:     rev,
			CustomerKey: customerKey,
			EmployeeKey: employeeKey,
		})
	}

	return result
}
