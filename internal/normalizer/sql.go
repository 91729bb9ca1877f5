package normalizer

import (
	"salesdw/internal/models"
	"salesdw/internal/tabular"
)

// SQLCustomers maps raw relational-export customer rows to canonical
// customers. Customer ids in this export are alphabetic codes and pass
// through untrimmed of meaning, only of whitespace.
func SQLCustomers(t *tabular.Table) []models.Customer {
	if t == nil {
		return nil
	}

	customers := make([]models.Customer, 0, t.Len())

	for _, row := range t.Rows {
		company := row.Get("CompanyName")

		customers = append(customers, models.Customer{
			ID:       CleanID(row.Get("CustomerID")),
			Company:  company,
			Country:  row.Get("Country"),
			City:     row.Get("City"),
			Region:   row.Get("Region"),
			Source:   models.SourceSQL,
			MatchKey: NormalizeText(company),
		})
	}

	return customers
}

// SQLEmployees maps raw relational-export employee rows to canonical
// employees. Numeric employee ids are cleaned so "5.0" and "5" collide.
func SQLEmployees(t *tabular.Table) []models.Employee {
	if t == nil {
		return nil
	}

	employees := make([]models.Employee, 0, t.Len())

	for _, row := range t.Rows {
		name := row.Get("FirstName") + " " + row.Get("LastName")

		employees = append(employees, models.Employee{
			ID:       CleanID(row.Get("EmployeeID")),
			Name:     name,
			Title:    row.Get("Title"),
			Country:  row.Get("Country"),
			Source:   models.SourceSQL,
			MatchKey: NormalizeText(name),
		})
	}

	return employees
}

// SQLOrders maps raw relational-export order rows to canonical orders.
// An order counts as delivered when it carries a parsable shipped date.
func SQLOrders(t *tabular.Table) []models.Order {
	if t == nil {
		return nil
	}

	orders := make([]models.Order, 0, t.Len())

	for _, row := range t.Rows {
		date, hasDate := ParseSQLDate(row.Get("OrderDate"))
		shipped, hasShipped := ParseSQLDate(row.Get("ShippedDate"))

		delivered := 0
		if hasShipped {
			delivered = 1
		}

		orders = append(orders, models.Order{
			ID:          CleanID(row.Get("OrderID")),
			Date:        date,
			HasDate:     hasDate,
			Shipped:     shipped,
			HasShipped:  hasShipped,
			Delivered:   delivered,
			CustomerRef: CleanID(row.Get("CustomerID")),
			EmployeeRef: CleanID(row.Get("EmployeeID")),
			Source:      models.SourceSQL,
		})
	}

	return orders
}
