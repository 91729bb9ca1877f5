// Package models defines the canonical entity shapes shared by every pipeline stage.
package models

import "time"

// Source tags identify which export system a record came from.
const (
	SourceSQL    = "sql"
	SourceAccess = "access"
)

// Customer is a customer record normalized into the canonical shape,
// regardless of which source system it came from.
type Customer struct {
	ID       string // natural id assigned by the source system
	Company  string
	Country  string
	City     string
	Region   string
	Source   string
	MatchKey string // normalized company name, stable across sources
}

// Employee is an employee record in canonical shape.
type Employee struct {
	ID       string
	Name     string // "First Last"
	Title    string
	Country  string
	Source   string
	MatchKey string // normalized full name, stable across sources
}

// Order is an order record in canonical shape. Dates keep an explicit
// presence flag because either source may carry unparsable or missing values.
type Order struct {
	ID          string
	Date        time.Time
	HasDate     bool
	Shipped     time.Time
	HasShipped  bool
	Delivered   int // 1 when the order has a shipped date
	CustomerRef string
	EmployeeRef string
	Source      string
}
