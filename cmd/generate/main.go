/*
main.go - Synthetic workforce dataset generator entry point

PURPOSE:
  One-shot generation run: load the config, seed the RNG streams, run the
  three generators, write the flat CSV tables, print a row summary.

CLI SURFACE:
  No flags. The config location and output directory are fixed, with env
  overrides for unusual setups (a .env file is honored if present):
    CONFIG_PATH  default "config.yaml"
    OUT_DIR      default "data/synthetic_raw"

EXIT BEHAVIOR:
  0 on success; any error (bad config, unwritable output, generation
  invariant violation) aborts via log.Fatalf.

DETERMINISM:
  Two runs with the same seed and config produce byte-identical output
  files, provided they run on the same calendar day (the simulation start
  date is today UTC minus the horizon).

SEE ALSO:
  - config/: configuration loading
  - workforce/: the generative model
  - output/: CSV serialization
*/
package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/warp/workforce-engine/config"
	"github.com/warp/workforce-engine/output"
	"github.com/warp/workforce-engine/workforce"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	streams := workforce.NewStreams(cfg.Seed)
	startDate := workforce.DefaultStartDate(time.Now(), cfg.Days)

	ds, err := workforce.Generate(cfg, streams, startDate)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	outDir := config.OutDir()
	if err := output.WriteDataset(outDir, ds); err != nil {
		log.Fatalf("Failed to write dataset: %v", err)
	}

	fmt.Println("Synthetic data generated:")
	fmt.Printf("- %s (%d rows)\n", filepath.Join(outDir, output.EmployeesFile), len(ds.Employees))
	fmt.Printf("- %s (%d rows)\n", filepath.Join(outDir, output.SchedulesFile), len(ds.Shifts))
	fmt.Printf("- %s (%d rows)\n", filepath.Join(outDir, output.TimecardsFile), len(ds.Timecards))
}
