package normalizer

import (
	"strconv"

	"salesdw/internal/models"
	"salesdw/internal/tabular"
)

// The desktop-database export arrives raw and passes through this transform
// stage before the warehouse build. The transform keeps the full attribute
// set of the export, not just the fields the dimensions need, so the
// processed files stay useful as a canonical snapshot of that source.

// AccessCustomer is a fully normalized customer row from the
// desktop-database export, ready to persist as customers_norm.csv.
type AccessCustomer struct {
	SourceID    string
	Company     string
	Contact     string
	Address     string
	City        string
	Region      string
	PostalCode  string
	Country     string
	Phone       string
	Fax         string
	CompanyNorm string
}

// AccessCustomerHeader is the column order of customers_norm.csv.
var AccessCustomerHeader = []string{
	"customer_source_id", "companyname", "contactname", "address", "city",
	"region", "postalcode", "country", "phone", "fax", "company_norm",
}

// Record renders the row in AccessCustomerHeader order.
func (c AccessCustomer) Record() []string {
	return []string{
		c.SourceID, c.Company, c.Contact, c.Address, c.City,
		c.Region, c.PostalCode, c.Country, c.Phone, c.Fax, c.CompanyNorm,
	}
}

// TransformAccessCustomers normalizes raw desktop-export customer rows.
func TransformAccessCustomers(t *tabular.Table) []AccessCustomer {
	if t == nil {
		return nil
	}

	out := make([]AccessCustomer, 0, t.Len())

	for _, row := range t.Rows {
		company := row.Get("Company")

		contact := ""
		if first, last := row.Get("First Name"), row.Get("Last Name"); first != "" || last != "" {
			contact = first + " " + last
		}

		out = append(out, AccessCustomer{
			SourceID:    CleanID(row.Get("ID")),
			Company:     company,
			Contact:     contact,
			Address:     row.Get("Address"),
			City:        row.Get("City"),
			Region:      row.Get("State/Province"),
			PostalCode:  row.Get("ZIP/Postal Code"),
			Country:     row.Get("Country/Region"),
			Phone:       row.Get("Business Phone"),
			Fax:         row.Get("Fax Number"),
			CompanyNorm: NormalizeText(company),
		})
	}

	return out
}

// AccessEmployee is a fully normalized employee row from the
// desktop-database export, ready to persist as employees_norm.csv.
type AccessEmployee struct {
	SourceID   string
	FirstName  string
	LastName   string
	Title      string
	Address    string
	City       string
	Region     string
	PostalCode string
	Country    string
	Notes      string
	EmpNorm    string
}

// AccessEmployeeHeader is the column order of employees_norm.csv.
var AccessEmployeeHeader = []string{
	"employee_source_id", "firstname", "lastname", "title", "address",
	"city", "region", "postalcode", "country", "notes", "emp_norm",
}

// Record renders the row in AccessEmployeeHeader order.
func (e AccessEmployee) Record() []string {
	return []string{
		e.SourceID, e.FirstName, e.LastName, e.Title, e.Address,
		e.City, e.Region, e.PostalCode, e.Country, e.Notes, e.EmpNorm,
	}
}

// TransformAccessEmployees normalizes raw desktop-export employee rows.
func TransformAccessEmployees(t *tabular.Table) []AccessEmployee {
	if t == nil {
		return nil
	}

	out := make([]AccessEmployee, 0, t.Len())

	for _, row := range t.Rows {
		first := row.Get("First Name")
		last := row.Get("Last Name")

		out = append(out, AccessEmployee{
			SourceID:   CleanID(row.Get("ID")),
			FirstName:  first,
			LastName:   last,
			Title:      row.Get("Job Title"),
			Address:    row.Get("Address"),
			City:       row.Get("City"),
			Region:     row.Get("State/Province"),
			PostalCode: row.Get("ZIP/Postal Code"),
			Country:    row.Get("Country/Region"),
			Notes:      row.Get("Notes"),
			EmpNorm:    NormalizeText(first + " " + last),
		})
	}

	return out
}

// AccessOrder is a fully normalized order row from the desktop-database
// export, ready to persist as orders_norm.csv. Dates are rendered ISO;
// unparsable dates become empty cells.
type AccessOrder struct {
	SourceID    string
	CustomerRef string
	EmployeeRef string
	OrderDate   string
	ShippedDate string
	ShipCountry string
	Freight     string
	Delivered   int
}

// AccessOrderHeader is the column order of orders_norm.csv.
var AccessOrderHeader = []string{
	"order_source_id", "customer_id_ref", "employee_id_ref", "orderdate",
	"shippeddate", "shipcountry", "freight", "delivered",
}

// Record renders the row in AccessOrderHeader order.
func (o AccessOrder) Record() []string {
	return []string{
		o.SourceID, o.CustomerRef, o.EmployeeRef, o.OrderDate,
		o.ShippedDate, o.ShipCountry, o.Freight, strconv.Itoa(o.Delivered),
	}
}

// TransformAccessOrders normalizes raw desktop-export order rows. The export
// writes day-first dates; anything unparsable degrades to an absent date.
func TransformAccessOrders(t *tabular.Table) []AccessOrder {
	if t == nil {
		return nil
	}

	out := make([]AccessOrder, 0, t.Len())

	for _, row := range t.Rows {
		orderDate := ""
		if d, ok := ParseAccessDate(row.Get("Order Date")); ok {
			orderDate = d.Format(DateISO)
		}

		shippedDate := ""
		delivered := 0

		if d, ok := ParseAccessDate(row.Get("Shipped Date")); ok {
			shippedDate = d.Format(DateISO)
			delivered = 1
		}

		freight := "0"
		if f, err := strconv.ParseFloat(row.Get("Shipping Fee"), 64); err == nil {
			freight = strconv.FormatFloat(f, 'f', -1, 64)
		}

		out = append(out, AccessOrder{
			SourceID:    CleanID(row.Get("Order ID")),
			CustomerRef: CleanID(row.Get("Customer ID")),
			EmployeeRef: CleanID(row.Get("Employee ID")),
			OrderDate:   orderDate,
			ShippedDate: shippedDate,
			ShipCountry: row.Get("Ship Country/Region"),
			Freight:     freight,
			Delivered:   delivered,
		})
	}

	return out
}

// AccessCustomersFromProcessed loads canonical customers_norm.csv rows into
// entity form for the warehouse build. The match key is read back from the
// file, not recomputed; the transform stage owns it for this source.
func AccessCustomersFromProcessed(t *tabular.Table) []models.Customer {
	if t == nil {
		return nil
	}

	customers := make([]models.Customer, 0, t.Len())

	for _, row := range t.Rows {
		customers = append(customers, models.Customer{
			ID:       row.Get("customer_source_id"),
			Company:  row.Get("companyname"),
			Country:  row.Get("country"),
			City:     row.Get("city"),
			Region:   row.Get("region"),
			Source:   models.SourceAccess,
			MatchKey: row.Get("company_norm"),
		})
	}

	return customers
}

// AccessEmployeesFromProcessed loads canonical employees_norm.csv rows.
func AccessEmployeesFromProcessed(t *tabular.Table) []models.Employee {
	if t == nil {
		return nil
	}

	employees := make([]models.Employee, 0, t.Len())

	for _, row := range t.Rows {
		employees = append(employees, models.Employee{
			ID:       row.Get("employee_source_id"),
			Name:     row.Get("firstname") + " " + row.Get("lastname"),
			Title:    row.Get("title"),
			Country:  row.Get("country"),
			Source:   models.SourceAccess,
			MatchKey: row.Get("emp_norm"),
		})
	}

	return employees
}

// AccessOrdersFromProcessed loads canonical orders_norm.csv rows.
func AccessOrdersFromProcessed(t *tabular.Table) []models.Order {
	if t == nil {
		return nil
	}

	orders := make([]models.Order, 0, t.Len())

	for _, row := range t.Rows {
		date, hasDate := ParseAccessDate(row.Get("orderdate"))
		shipped, hasShipped := ParseAccessDate(row.Get("shippeddate"))

		delivered := 0
		if d, err := strconv.Atoi(row.Get("delivered")); err == nil && d > 0 {
			delivered = 1
		} else if hasShipped {
			delivered = 1
		}

		orders = append(orders, models.Order{
			ID:          row.Get("order_source_id"),
			Date:        date,
			HasDate:     hasDate,
			Shipped:     shipped,
			HasShipped:  hasShipped,
			Delivered:   delivered,
			CustomerRef: row.Get("customer_id_ref"),
			EmployeeRef: row.Get("employee_id_ref"),
			Source:      models.SourceAccess,
		})
	}

	return orders
}
