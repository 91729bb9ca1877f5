// Package kpi computes grouped order summaries from the persisted
// warehouse tables.
package kpi

import (
	"sort"

	"github.com/shopspring/decimal"

	"salesdw/internal/models"
)

// GroupSummary is one row of a grouped KPI table. Key is the grouping
// value: a country, an employee match key, or a YYYY-MM month.
type GroupSummary struct {
	Key          string
	TotalOrders  int
	Delivered    int
	NotDelivered int
	TotalRevenue decimal.Decimal
}

// GlobalSummary is the whole-warehouse headline block.
type GlobalSummary struct {
	TotalOrders     int
	Delivered       int
	NotDelivered    int
	TotalRevenue    decimal.Decimal
	DeliveryRatePct float64
}

// Result bundles every KPI output of one run.
type Result struct {
	Global     GlobalSummary
	ByCountry  []GroupSummary
	ByEmployee []GroupSummary
	ByMonth    []GroupSummary
}

// Aggregate joins facts to their dimensions and produces the global,
// by-country, by-employee, and by-month summaries. Joins are left joins: a
// fact whose key has no dimension row (should not happen, the fact builder
// enforces referential integrity) lands in an empty group but is still
// counted. Facts without a parsable order date are excluded from the
// monthly table only.
func Aggregate(facts []models.FactOrder, customers []models.DimCustomer, employees []models.DimEmployee) Result {
	countryByKey := make(map[int]string, len(customers))
	for _, c := range customers {
		countryByKey[c.Key] = c.Country
	}

	employeeByKey := make(map[int]string, len(employees))
	for _, e := range employees {
		employeeByKey[e.Key] = e.MatchKey
	}

	byCountry := make(map[string]*GroupSummary)
	byEmployee := make(map[string]*GroupSummary)
	byMonth := make(map[string]*GroupSummary)

	var result Result

	result.Global.TotalRevenue = decimal.Zero

	for _, f := range facts {
		result.Global.TotalOrders++
		result.Global.Delivered += f.Delivered
		result.Global.TotalRevenue = result.Global.TotalRevenue.Add(f.Revenue)

		accumulate(byCountry, countryByKey[f.CustomerKey], f)
		accumulate(byEmployee, employeeByKey[f.EmployeeKey], f)

		if f.HasDate {
			accumulate(byMonth, f.Date.Format("2006-01"), f)
		}
	}

	result.Global.NotDelivered = result.Global.TotalOrders - result.Global.Delivered
	if result.Global.TotalOrders > 0 {
		result.Global.DeliveryRatePct = float64(result.Global.Delivered) / float64(result.Global.TotalOrders) * 100
	}

	result.ByCountry = sortByVolume(byCountry)
	result.ByEmployee = sortByVolume(byEmployee)
	result.ByMonth = sortByKey(byMonth)

	return result
}

func accumulate(groups map[string]*GroupSummary, key string, f models.FactOrder) {
	g, ok := groups[key]
	if !ok {
		g = &GroupSummary{Key: key, TotalRevenue: decimal.Zero}
		groups[key] = g
	}

	g.TotalOrders++
	g.Delivered += f.Delivered
	g.NotDelivered = g.TotalOrders - g.Delivered
	g.TotalRevenue = g.TotalRevenue.Add(f.Revenue)
}

// sortByVolume orders groups by total orders descending, breaking ties on
// the group key ascending so output is deterministic.
func sortByVolume(groups map[string]*GroupSummary) []GroupSummary {
	out := flatten(groups)

	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalOrders != out[j].TotalOrders {
			return out[i].TotalOrders > out[j].TotalOrders
		}

		return out[i].Key < out[j].Key
	})

	return out
}

// sortByKey orders groups by the group key ascending (months sort
// chronologically in YYYY-MM form).
func sortByKey(groups map[string]*GroupSummary) []GroupSummary {
	out := flatten(groups)

	sort.Slice(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})

	return out
}

func flatten(groups map[string]*GroupSummary) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}

	return out
}
