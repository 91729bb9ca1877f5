package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DimCustomer is one persisted row of the customer dimension: the winning
// customer record plus its warehouse surrogate key.
type DimCustomer struct {
	Key int
	Customer
}

// DimEmployee is one persisted row of the employee dimension.
type DimEmployee struct {
	Key int
	Employee
}

// FactOrder is one persisted row of the order fact table. CustomerKey and
// EmployeeKey always resolve to existing dimension rows; orders that fail
// resolution never become facts.
type FactOrder struct {
	Key         int
	OrderID     string
	Date        time.Time
	HasDate     bool
	Shipped     time.Time
	HasShipped  bool
	Delivered   int
	Source      string
	CustomerRef string
	EmployeeRef string
	Revenue     decimal.Decimal
	CustomerKey int
	EmployeeKey int
}

// TimeRow is one calendar day of the time dimension.
type TimeRow struct {
	Date time.Time
	Year int
}
