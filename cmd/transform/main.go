// Package main provides the transform command, which normalizes the raw
// desktop-database export into canonical CSV files for the warehouse build.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"salesdw/internal/config"
	"salesdw/internal/logger"
	"salesdw/internal/normalizer"
	"salesdw/internal/tabular"
)

func main() {
	configPath := flag.String("config", "", "Path to pipeline YAML config (defaults to the conventional data/ layout)")
	rawDir := flag.String("raw", "", "Override: raw desktop export directory")
	outDir := flag.String("out", "", "Override: processed output directory")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *rawDir != "" {
		cfg.Sources.AccessRawDir = *rawDir
	}

	if *outDir != "" {
		cfg.Sources.AccessProcessedDir = *outDir
	}

	log := logger.NewLogger(cfg.Logging.Level)

	log.Info("transforming desktop export", "raw", cfg.Sources.AccessRawDir, "out", cfg.Sources.AccessProcessedDir)

	// Each entity transforms independently: one failing table must not
	// block the others.
	failures := 0

	if n, err := transformCustomers(cfg); err != nil {
		log.Error("customers failed", "error", err)

		failures++
	} else {
		log.Info("customers transformed", "rows", n)
	}

	if n, err := transformEmployees(cfg); err != nil {
		log.Error("employees failed", "error", err)

		failures++
	} else {
		log.Info("employees transformed", "rows", n)
	}

	if n, err := transformOrders(cfg); err != nil {
		log.Error("orders failed", "error", err)

		failures++
	} else {
		log.Info("orders transformed", "rows", n)
	}

	if failures == 3 {
		log.Error("every entity failed to transform")
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.LoadConfig(path)
}

func transformCustomers(cfg *config.Config) (int, error) {
	table, err := loadRaw(cfg.Sources.AccessRawDir, "Customers.csv")
	if err != nil {
		return 0, err
	}

	customers := normalizer.TransformAccessCustomers(table)

	records := make([][]string, len(customers))
	for i, c := range customers {
		records[i] = c.Record()
	}

	out := filepath.Join(cfg.Sources.AccessProcessedDir, "customers_norm.csv")

	return len(records), tabular.WriteTable(out, normalizer.AccessCustomerHeader, records)
}

func transformEmployees(cfg *config.Config) (int, error) {
	table, err := loadRaw(cfg.Sources.AccessRawDir, "Employees.csv")
	if err != nil {
		return 0, err
	}

	employees := normalizer.TransformAccessEmployees(table)

	records := make([][]string, len(employees))
	for i, e := range employees {
		records[i] = e.Record()
	}

	out := filepath.Join(cfg.Sources.AccessProcessedDir, "employees_norm.csv")

	return len(records), tabular.WriteTable(out, normalizer.AccessEmployeeHeader, records)
}

func transformOrders(cfg *config.Config) (int, error) {
	table, err := loadRaw(cfg.Sources.AccessRawDir, "Orders.csv")
	if err != nil {
		return 0, err
	}

	orders := normalizer.TransformAccessOrders(table)

	records := make([][]string, len(orders))
	for i, o := range orders {
		records[i] = o.Record()
	}

	out := filepath.Join(cfg.Sources.AccessProcessedDir, "orders_norm.csv")

	return len(records), tabular.WriteTable(out, normalizer.AccessOrderHeader, records)
}

func loadRaw(dir, name string) (*tabular.Table, error) {
	path, err := tabular.FindFile(dir, name)
	if err != nil {
		return nil, err
	}

	return tabular.LoadTable(path)
}
