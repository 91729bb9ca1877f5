// Package main provides the seed command, which writes a small
// deterministic sample dataset into the raw source directories so the
// pipeline can be run end to end without real exports.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"salesdw/internal/tabular"
)

func main() {
	dataDir := flag.String("dir", "data", "Data directory root")
	flag.Parse()

	sqlDir := filepath.Join(*dataDir, "raw", "sql")
	accessDir := filepath.Join(*dataDir, "raw", "access")

	if err := seedSQL(sqlDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding sql export: %v\n", err)
		os.Exit(1)
	}

	if err := seedAccess(accessDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding access export: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample exports written under %s and %s\n", sqlDir, accessDir)
	fmt.Println("Next: run the transform command, then warehouse, then kpi.")
}

// seedSQL writes the relational-export sample. The dataset deliberately
// overlaps with the access export on "Café Müller" and "Acme Inc" so the
// dimension merge has something to deduplicate.
func seedSQL(dir string) error {
	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{
			name:   "Customers.csv",
			header: []string{"CustomerID", "CompanyName", "Country", "City", "Region"},
			rows: [][]string{
				{"CAFEM", "Café Müller", "Germany", "Berlin", ""},
				{"ACMEI", "Acme Inc", "USA", "Chicago", "IL"},
				{"NORDK", "Nordkiosk", "Norway", "Oslo", ""},
			},
		},
		{
			name:   "Employees.csv",
			header: []string{"EmployeeID", "FirstName", "LastName", "Title", "Country"},
			rows: [][]string{
				{"1", "Nancy", "Davolio", "Sales Representative", "USA"},
				{"2", "André", "Fuller", "Sales Manager", "USA"},
			},
		},
		{
			name:   "Orders.csv",
			header: []string{"OrderID", "CustomerID", "EmployeeID", "OrderDate", "ShippedDate"},
			rows: [][]string{
				{"10248", "CAFEM", "1", "2024-01-04", "2024-01-16"},
				{"10249", "ACMEI", "2", "2024-01-05", ""},
				{"10250", "NORDK", "1", "2024-02-08", "2024-02-12"},
				// References a customer no export knows; the fact builder
				// drops it and the run summary counts it.
				{"10251", "GHOST", "1", "2024-02-09", ""},
			},
		},
		{
			name:   "Order Details.csv",
			header: []string{"OrderID", "UnitPrice", "Quantity"},
			rows: [][]string{
				{"10248", "10", "2"},
				{"10248", "5", "1"},
				{"10249", "14.5", "4"},
				{"10250", "7.75", "10"},
			},
		},
	}

	for _, t := range tables {
		if err := tabular.WriteTable(filepath.Join(dir, t.name), t.header, t.rows); err != nil {
			return err
		}
	}

	return nil
}

// seedAccess writes the desktop-export sample with that export's header
// spellings, day-first dates, and float-formatted numeric ids.
func seedAccess(dir string) error {
	tables := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{
			name: "Customers.csv",
			header: []string{
				"ID", "Company", "First Name", "Last Name", "Address", "City",
				"State/Province", "ZIP/Postal Code", "Country/Region", "Business Phone", "Fax Number",
			},
			rows: [][]string{
				// Same real-world company as the sql export's CAFEM row.
				{"1.0", "CAFE  MULLER", "Anna", "Schmidt", "Unter den Linden 5", "Berlin", "", "10117", "Germany", "(030) 12345", ""},
				{"2.0", "Acme Inc.", "John", "Doe", "1 Main St", "Chicago", "IL", "60601", "USA", "(312) 55555", ""},
				{"3.0", "Pacífico Sur", "María", "López", "Av. del Mar 9", "Valparaíso", "", "", "Chile", "", ""},
			},
		},
		{
			name: "Employees.csv",
			header: []string{
				"ID", "First Name", "Last Name", "Job Title", "Address", "City",
				"State/Province", "ZIP/Postal Code", "Country/Region", "Notes",
			},
			rows: [][]string{
				// Same person as the sql export's employee 2, accents differ.
				{"9.0", "Andre", "Fuller", "Sales Manager", "", "Seattle", "WA", "", "USA", ""},
				{"10.0", "Laura", "Giussani", "Sales Coordinator", "", "Milan", "", "", "Italy", ""},
			},
		},
		{
			name: "Orders.csv",
			header: []string{
				"Order ID", "Customer ID", "Employee ID", "Order Date", "Shipped Date",
				"Ship Country/Region", "Shipping Fee",
			},
			rows: [][]string{
				{"30001.0", "1.0", "9.0", "15/01/2024", "22/01/2024", "Germany", "12.50"},
				{"30002.0", "2.0", "10.0", "03/02/2024", "", "USA", "4.00"},
				{"30003.0", "3.0", "9.0", "20/02/2024", "25/02/2024", "Chile", "31.20"},
			},
		},
		{
			name:   "Order Details.csv",
			header: []string{"Order ID", "Unit Price", "Quantity"},
			rows: [][]string{
				{"30001.0", "21.00", "3"},
				{"30002.0", "9.99", "2"},
				{"30003.0", "4.50", "12"},
			},
		},
	}

	for _, t := range tables {
		if err := tabular.WriteTable(filepath.Join(dir, t.name), t.header, t.rows); err != nil {
			return err
		}
	}

	return nil
}
