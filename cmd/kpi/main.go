// Package main provides the kpi command, which reads the persisted
// warehouse and produces the grouped KPI summary tables.
package main

import (
	"flag"
	"fmt"
	"os"

	"salesdw/internal/config"
	"salesdw/internal/kpi"
	"salesdw/internal/logger"
	"salesdw/internal/report"
	"salesdw/internal/warehouse"
)

func main() {
	configPath := flag.String("config", "", "Path to pipeline YAML config (defaults to the conventional data/ layout)")
	topN := flag.Int("top", 10, "Rows per grouped table to print (0 prints all)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)

	if *configPath == "" {
		cfg = config.Default()
	} else {
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	log := logger.NewLogger(cfg.Logging.Level)

	snap, err := warehouse.Load(cfg.Output.WarehouseDir)
	if err != nil {
		log.Error("failed to load warehouse, run the warehouse command first", "error", err)
		os.Exit(1)
	}

	result := kpi.Aggregate(snap.Facts, snap.Customers, snap.Employees)

	if err := kpi.WriteSummaries(cfg.Output.KPIDir, result); err != nil {
		log.Error("failed to write KPI summaries", "error", err)
		os.Exit(1)
	}

	log.Info("KPI summaries written", "dir", cfg.Output.KPIDir,
		"countries", len(result.ByCountry),
		"employees", len(result.ByEmployee),
		"months", len(result.ByMonth))

	fmt.Println()
	fmt.Print(report.RenderKPI(result, *topN))
}
