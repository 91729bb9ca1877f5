package warehouse

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"salesdw/internal/models"
	"salesdw/internal/normalizer"
	"salesdw/internal/tabular"
)

// Snapshot is a loaded warehouse build, as read back from disk.
type Snapshot struct {
	Customers []models.DimCustomer
	Employees []models.DimEmployee
	Facts     []models.FactOrder
}

// Load reads the persisted dimension and fact tables back from dir. The KPI
// command consumes the warehouse this way rather than sharing in-memory
// state with the build.
func Load(dir string) (*Snapshot, error) {
	customers, err := tabular.LoadTable(filepath.Join(dir, FileDimCustomers))
	if err != nil {
		return nil, fmt.Errorf("customer dimension: %w", err)
	}

	employees, err := tabular.LoadTable(filepath.Join(dir, FileDimEmployees))
	if err != nil {
		return nil, fmt.Errorf("employee dimension: %w", err)
	}

	facts, err := tabular.LoadTable(filepath.Join(dir, FileFactOrders))
	if err != nil {
		return nil, fmt.Errorf("fact table: %w", err)
	}

	snap := &Snapshot{
		Customers: make([]models.DimCustomer, 0, customers.Len()),
		Employees: make([]models.DimEmployee, 0, employees.Len()),
		Facts:     make([]models.FactOrder, 0, facts.Len()),
	}

	for _, row := range customers.Rows {
		snap.Customers = append(snap.Customers, models.DimCustomer{
			Key: atoi(row.Get("customer_key")),
			Customer: models.Customer{
				ID:       row.Get("customerid"),
				Company:  row.Get("companyname"),
				Country:  row.Get("country"),
				City:     row.Get("city"),
				Region:   row.Get("region"),
				Source:   row.Get("source"),
				MatchKey: row.Get("company_norm"),
			},
		})
	}

	for _, row := range employees.Rows {
		snap.Employees = append(snap.Employees, models.DimEmployee{
			Key: atoi(row.Get("employee_key")),
			Employee: models.Employee{
				ID:       row.Get("employeeid"),
				Name:     row.Get("name"),
				Title:    row.Get("title"),
				Country:  row.Get("country"),
				Source:   row.Get("source"),
				MatchKey: row.Get("emp_norm"),
			},
		})
	}

	for _, row := range facts.Rows {
		date, hasDate := parseISO(row.Get("date"))
		shipped, hasShipped := parseISO(row.Get("shipped"))

		revenue, err := decimal.NewFromString(row.Get("revenue"))
		if err != nil {
			revenue = decimal.Zero
		}

		snap.Facts = append(snap.Facts, models.FactOrder{
			Key:         atoi(row.Get("fact_key")),
			OrderID:     row.Get("orderid"),
			Date:        date,
			HasDate:     hasDate,
			Shipped:     shipped,
			HasShipped:  hasShipped,
			Delivered:   atoi(row.Get("delivered")),
			Source:      row.Get("source"),
			CustomerRef: row.Get("c_ref"),
			EmployeeRef: row.Get("e_ref"),
			Revenue:     revenue,
			CustomerKey: atoi(row.Get("customer_key")),
			EmployeeKey: atoi(row.Get("employee_key")),
		})
	}

	return snap, nil
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func parseISO(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(normalizer.DateISO, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
