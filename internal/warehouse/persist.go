package warehouse

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"salesdw/internal/models"
	"salesdw/internal/normalizer"
	"salesdw/internal/tabular"
)

// Persisted warehouse file names.
const (
	FileDimCustomers = "dim_customers.csv"
	FileDimEmployees = "dim_employees.csv"
	FileFactOrders   = "fact_orders.csv"
	FileDimTime      = "dim_temps.csv"
)

// Persisted column orders. The KPI stage and external consumers read these
// by name, so the headers are part of the pipeline contract.
var (
	dimCustomerHeader = []string{"customer_key", "customerid", "companyname", "country", "city", "region", "source", "company_norm"}
	dimEmployeeHeader = []string{"employee_key", "employeeid", "name", "title", "country", "source", "emp_norm"}
	factHeader        = []string{"fact_key", "orderid", "date", "shipped", "delivered", "source", "c_ref", "e_ref", "revenue", "customer_key", "employee_key"}
	timeHeader        = []string{"date", "year"}
)

// Persist writes every warehouse table under dir, fully replacing any
// previous build.
func Persist(dir string, customers []models.DimCustomer, employees []models.DimEmployee, facts []models.FactOrder, times []models.TimeRow) error {
	customerRecords := make([][]string, len(customers))
	for i, c := range customers {
		customerRecords[i] = []string{
			strconv.Itoa(c.Key), c.ID, c.Company, c.Country, c.City, c.Region, c.Source, c.MatchKey,
		}
	}

	if err := tabular.WriteTable(filepath.Join(dir, FileDimCustomers), dimCustomerHeader, customerRecords); err != nil {
		return fmt.Errorf("customer dimension: %w", err)
	}

	employeeRecords := make([][]string, len(employees))
	for i, e := range employees {
		employeeRecords[i] = []string{
			strconv.Itoa(e.Key), e.ID, e.Name, e.Title, e.Country, e.Source, e.MatchKey,
		}
	}

	if err := tabular.WriteTable(filepath.Join(dir, FileDimEmployees), dimEmployeeHeader, employeeRecords); err != nil {
		return fmt.Errorf("employee dimension: %w", err)
	}

	factRecords := make([][]string, len(facts))
	for i, f := range facts {
		factRecords[i] = []string{
			strconv.Itoa(f.Key),
			f.OrderID,
			formatDate(f.Date, f.HasDate),
			formatDate(f.Shipped, f.HasShipped),
			strconv.Itoa(f.Delivered),
			f.Source,
			f.CustomerRef,
			f.EmployeeRef,
			f.Revenue.String(),
			strconv.Itoa(f.CustomerKey),
			strconv.Itoa(f.EmployeeKey),
		}
	}

	if err := tabular.WriteTable(filepath.Join(dir, FileFactOrders), factHeader, factRecords); err != nil {
		return fmt.Errorf("fact table: %w", err)
	}

	timeRecords := make([][]string, len(times))
	for i, t := range times {
		timeRecords[i] = []string{t.Date.Format(normalizer.DateISO), strconv.Itoa(t.Year)}
	}

	if err := tabular.WriteTable(filepath.Join(dir, FileDimTime), timeHeader, timeRecords); err != nil {
		return fmt.Errorf("time dimension: %w", err)
	}

	return nil
}

func formatDate(t time.Time, ok bool) string {
	if !ok {
		return ""
	}

	return t.Format(normalizer.DateISO)
}
