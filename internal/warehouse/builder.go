package warehouse

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"salesdw/internal/config"
	"salesdw/internal/logger"
	"salesdw/internal/models"
	"salesdw/internal/normalizer"
	"salesdw/internal/tabular"
)

// BuildStats is the run accounting the warehouse command reports after a
// successful build.
type BuildStats struct {
	SQLCustomers    int
	AccessCustomers int
	SQLEmployees    int
	AccessEmployees int
	SQLOrders       int
	AccessOrders    int

	DimCustomers int
	DimEmployees int
	Facts        int
	TimeRows     int

	DroppedRows        int
	DroppedCustomerRef int
	DroppedEmployeeRef int

	TotalRevenue decimal.Decimal

	HasDateRange bool
	FirstDate    time.Time
	LastDate     time.Time
}

// Builder runs the one-shot warehouse build: load, merge, resolve, persist.
type Builder struct {
	cfg *config.Config
	log *logger.Logger
}

// NewBuilder creates a builder over the given configuration.
func NewBuilder(cfg *config.Config, log *logger.Logger) *Builder {
	return &Builder{cfg: cfg, log: log}
}

// Run executes the full build and persists every warehouse table. A source
// that fails to load contributes zero rows and the build continues; only an
// entity type empty across all sources is fatal (ErrNoDimensionRows).
func (b *Builder) Run() (*BuildStats, error) {
	stats := &BuildStats{TotalRevenue: decimal.Zero}
	pri := PriorityFromOrder(b.cfg.Merge.Priority)

	// Line-item revenue, computed independently per source.
	revenue := RevenueBySource{
		models.SourceSQL:    normalizer.LoadRevenueMap(b.cfg.Sources.SQLRawDir, "OrderID", b.log),
		models.SourceAccess: normalizer.LoadRevenueMap(b.cfg.Sources.AccessRawDir, "Order ID", b.log),
	}

	// Relational export arrives raw; the desktop export was already
	// normalized by the transform command.
	sqlCustomers := normalizer.SQLCustomers(b.loadRaw(b.cfg.Sources.SQLRawDir, "Customers.csv"))
	sqlEmployees := normalizer.SQLEmployees(b.loadRaw(b.cfg.Sources.SQLRawDir, "Employees.csv"))
	sqlOrders := normalizer.SQLOrders(b.loadRaw(b.cfg.Sources.SQLRawDir, "Orders.csv"))

	accCustomers := normalizer.AccessCustomersFromProcessed(b.loadProcessed("customers_norm.csv"))
	accEmployees := normalizer.AccessEmployeesFromProcessed(b.loadProcessed("employees_norm.csv"))
	accOrders := normalizer.AccessOrdersFromProcessed(b.loadProcessed("orders_norm.csv"))

	stats.SQLCustomers, stats.AccessCustomers = len(sqlCustomers), len(accCustomers)
	stats.SQLEmployees, stats.AccessEmployees = len(sqlEmployees), len(accEmployees)
	stats.SQLOrders, stats.AccessOrders = len(sqlOrders), len(accOrders)

	// Dimensions. Concatenation order is fixed (sql first) so surrogate key
	// assignment is reproducible.
	dimCustomers, customerKeys, err := BuildCustomerDim(append(sqlCustomers, accCustomers...), pri)
	if err != nil {
		return nil, fmt.Errorf("customer dimension: %w", err)
	}

	dimEmployees, employeeKeys, err := BuildEmployeeDim(append(sqlEmployees, accEmployees...), pri)
	if err != nil {
		return nil, fmt.Errorf("employee dimension: %w", err)
	}

	stats.DimCustomers = len(dimCustomers)
	stats.DimEmployees = len(dimEmployees)

	// Facts.
	facts := BuildFacts(append(sqlOrders, accOrders...), revenue, customerKeys, employeeKeys)
	stats.Facts = len(facts.Rows)
	stats.DroppedRows = facts.DroppedRows
	stats.DroppedCustomerRef = facts.DroppedCustomerRef
	stats.DroppedEmployeeRef = facts.DroppedEmployeeRef
	stats.TotalRevenue = facts.TotalRevenue()

	if facts.DroppedRows > 0 {
		b.log.Warn("orphaned orders dropped",
			"rows", facts.DroppedRows,
			"missing_customer_ref", facts.DroppedCustomerRef,
			"missing_employee_ref", facts.DroppedEmployeeRef)
	}

	// Time dimension.
	timeRows := BuildTimeDimension(facts.Rows)
	stats.TimeRows = len(timeRows)

	if len(timeRows) > 0 {
		stats.HasDateRange = true
		stats.FirstDate = timeRows[0].Date
		stats.LastDate = timeRows[len(timeRows)-1].Date
	}

	if err := Persist(b.cfg.Output.WarehouseDir, dimCustomers, dimEmployees, facts.Rows, timeRows); err != nil {
		return nil, fmt.Errorf("failed to persist warehouse: %w", err)
	}

	b.log.Info("warehouse built",
		"customers", stats.DimCustomers,
		"employees", stats.DimEmployees,
		"facts", stats.Facts,
		"time_rows", stats.TimeRows)

	return stats, nil
}

// loadRaw loads one table from a raw source directory. Missing or broken
// inputs degrade to nil: the source contributes no rows of that entity.
func (b *Builder) loadRaw(dir, name string) *tabular.Table {
	path, err := tabular.FindFile(dir, name)
	if err != nil {
		b.log.Warn("source table missing", "table", name, "error", err)
		return nil
	}

	table, err := tabular.LoadTable(path)
	if err != nil {
		b.log.Warn("source table unreadable", "path", path, "error", err)
		return nil
	}

	if table.Ragged > 0 {
		b.log.Warn("ragged rows adjusted to header width", "path", path, "rows", table.Ragged)
	}

	return table
}

func (b *Builder) loadProcessed(name string) *tabular.Table {
	return b.loadRaw(b.cfg.Sources.AccessProcessedDir, name)
}
