package normalizer

import (
	"github.com/shopspring/decimal"

	"salesdw/internal/logger"
	"salesdw/internal/tabular"
)

// Candidate file names for the line-item detail table, tried in order.
var orderDetailNames = []string{"Order Details.csv", "OrderDetails.csv"}

// LoadRevenueMap loads a source's order line items and returns the summed
// unit price × quantity per cleaned order id. The order-id, price, and
// quantity columns are resolved fuzzily (tabular.ResolveColumn) because the
// two exports spell their headers differently.
//
// A missing file, unreadable table, or unresolvable column degrades to an
// empty map with a warning: the source still contributes orders, just with
// zero revenue, and sibling sources are unaffected.
func LoadRevenueMap(dir, orderIDHint string, log *logger.Logger) map[string]decimal.Decimal {
	revenue := make(map[string]decimal.Decimal)

	path, err := tabular.FindFile(dir, orderDetailNames...)
	if err != nil {
		log.Warn("order details not found, revenue defaults to zero", "dir", dir, "error", err)
		return revenue
	}

	table, err := tabular.LoadTable(path)
	if err != nil {
		log.Warn("order details unreadable, revenue defaults to zero", "path", path, "error", err)
		return revenue
	}

	oidCol := tabular.ResolveColumn(table.Headers, orderIDHint, "orderid")
	priceCol := tabular.ResolveColumn(table.Headers, "price", "unitprice")
	qtyCol := tabular.ResolveColumn(table.Headers, "quantity", "quantity")

	for _, row := range table.Rows {
		oid := CleanID(row.Get(oidCol))
		if oid == "" {
			continue
		}

		price := parseDecimal(row.Get(priceCol))
		qty := parseDecimal(row.Get(qtyCol))

		revenue[oid] = revenue[oid].Add(price.Mul(qty))
	}

	log.Debug("revenue map loaded", "path", path, "orders", len(revenue))

	return revenue
}

// parseDecimal parses a monetary or quantity cell, treating malformed
// values as zero so a single bad line item never fails the source.
func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}
