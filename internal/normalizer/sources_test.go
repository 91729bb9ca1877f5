package normalizer

import (
	"testing"

	"github.com/shopspring/decimal"

	"salesdw/internal/models"
	"salesdw/internal/tabular"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}

	return d
}

func tableFrom(headers []string, rows ...[]string) *tabular.Table {
	t := &tabular.Table{Headers: headers}

	for _, r := range rows {
		row := make(tabular.Row, len(headers))
		for i, h := range headers {
			row[h] = r[i]
		}

		t.Rows = append(t.Rows, row)
	}

	return t
}

func TestSQLCustomers(t *testing.T) {
	table := tableFrom(
		[]string{"CustomerID", "CompanyName", "Country", "City", "Region"},
		[]string{"CAFEM", "Café Müller", "Germany", "Berlin", ""},
	)

	customers := SQLCustomers(table)
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}

	c := customers[0]
	if c.ID != "CAFEM" || c.Source != models.SourceSQL {
		t.Errorf("unexpected identity: %+v", c)
	}

	if c.MatchKey != "cafe muller" {
		t.Errorf("MatchKey = %q, want %q", c.MatchKey, "cafe muller")
	}
}

func TestSQLOrders_DeliveredFollowsShippedDate(t *testing.T) {
	table := tableFrom(
		[]string{"OrderID", "CustomerID", "EmployeeID", "OrderDate", "ShippedDate"},
		[]string{"10248", "CAFEM", "1", "2024-01-04", "2024-01-16"},
		[]string{"10249", "ACMEI", "2.0", "2024-01-05", ""},
		[]string{"10250", "NORDK", "1", "garbage", "also garbage"},
	)

	orders := SQLOrders(table)
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}

	if orders[0].Delivered != 1 || !orders[0].HasShipped {
		t.Error("shipped order should be delivered")
	}

	if orders[1].Delivered != 0 || orders[1].HasShipped {
		t.Error("unshipped order should be pending")
	}

	if orders[1].EmployeeRef != "2" {
		t.Errorf("EmployeeRef = %q, want cleaned %q", orders[1].EmployeeRef, "2")
	}

	// Malformed dates degrade to absent, the row is retained.
	if orders[2].HasDate || orders[2].HasShipped {
		t.Error("unparsable dates should report absent")
	}
}

func TestTransformAccessCustomers(t *testing.T) {
	table := tableFrom(
		[]string{"ID", "Company", "First Name", "Last Name", "Address", "City", "State/Province", "ZIP/Postal Code", "Country/Region", "Business Phone", "Fax Number"},
		[]string{"1.0", "CAFE  MULLER", "Anna", "Schmidt", "Unter den Linden 5", "Berlin", "", "10117", "Germany", "(030) 12345", ""},
	)

	customers := TransformAccessCustomers(table)
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}

	c := customers[0]
	if c.SourceID != "1" {
		t.Errorf("SourceID = %q, want %q", c.SourceID, "1")
	}

	if c.CompanyNorm != "cafe muller" {
		t.Errorf("CompanyNorm = %q, want %q", c.CompanyNorm, "cafe muller")
	}

	if c.Contact != "Anna Schmidt" {
		t.Errorf("Contact = %q, want %q", c.Contact, "Anna Schmidt")
	}

	if got := len(c.Record()); got != len(AccessCustomerHeader) {
		t.Errorf("record width %d does not match header width %d", got, len(AccessCustomerHeader))
	}
}

func TestTransformAccessOrders(t *testing.T) {
	table := tableFrom(
		[]string{"Order ID", "Customer ID", "Employee ID", "Order Date", "Shipped Date", "Ship Country/Region", "Shipping Fee"},
		[]string{"30001.0", "1.0", "9.0", "15/01/2024", "22/01/2024", "Germany", "12.50"},
		[]string{"30002.0", "2.0", "10.0", "03/02/2024", "", "USA", "notanumber"},
	)

	orders := TransformAccessOrders(table)
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	if orders[0].SourceID != "30001" || orders[0].CustomerRef != "1" || orders[0].EmployeeRef != "9" {
		t.Errorf("ids not cleaned: %+v", orders[0])
	}

	if orders[0].OrderDate != "2024-01-15" {
		t.Errorf("OrderDate = %q, want ISO %q", orders[0].OrderDate, "2024-01-15")
	}

	if orders[0].Delivered != 1 {
		t.Error("shipped order should be delivered")
	}

	if orders[1].Delivered != 0 || orders[1].ShippedDate != "" {
		t.Error("unshipped order should be pending with empty shipped date")
	}

	if orders[1].Freight != "0" {
		t.Errorf("malformed freight should degrade to 0, got %q", orders[1].Freight)
	}
}

func TestAccessRoundTrip(t *testing.T) {
	// Entities written by the transform stage load back with the same
	// identity and match keys.
	raw := tableFrom(
		[]string{"ID", "Company", "Country/Region", "City"},
		[]string{"7.0", "Pacífico Sur", "Chile", "Valparaíso"},
	)

	transformed := TransformAccessCustomers(raw)

	processed := tableFrom(AccessCustomerHeader, transformed[0].Record())

	customers := AccessCustomersFromProcessed(processed)
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}

	c := customers[0]
	if c.ID != "7" || c.MatchKey != "pacifico sur" || c.Source != models.SourceAccess {
		t.Errorf("round trip lost identity: %+v", c)
	}
}
