// Package main provides the warehouse command, which merges both source
// systems into the star schema and persists the dimension and fact tables.
package main

import (
	"flag"
	"fmt"
	"os"

	"salesdw/internal/config"
	"salesdw/internal/logger"
	"salesdw/internal/report"
	"salesdw/internal/warehouse"
)

func main() {
	configPath := flag.String("config", "", "Path to pipeline YAML config (defaults to the conventional data/ layout)")
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

	builder := warehouse.NewBuilder(cfg, log)

	stats, err := builder.Run()
	if err != nil {
		log.Error("warehouse build failed", "error", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Print(report.RenderBuildStats(stats))
	fmt.Printf("\nTables written to: %s\n", cfg.Output.WarehouseDir)
}
