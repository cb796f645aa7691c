// headers-import loads a CSV dump of SEGY trace headers into the sqlite
// header store used by the surveymap server.
//
// The CSV must carry an inline,crossline,cdp_x,cdp_y header row; row order is
// preserved as native trace order, which the corner extraction depends on.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/geoseis/surveymap/internal/headerdb"
)

var (
	dbPath        = flag.String("db", "headers.db", "Path to the trace-header store")
	csvPath       = flag.String("csv", "", "CSV file of trace headers (required)")
	sgs           = flag.Float64("sgs", 0, "Coordinate scalar from the trace header (0 = identity)")
	sourceFile    = flag.String("source", "", "Name of the SEGY file the headers were extracted from")
	migrationsDir = flag.String("migrations", "migrations", "Schema migrations directory")
	skipMigrate   = flag.Bool("skip-migrate", false, "Do not run schema migrations before importing")
)

func main() {
	flag.Parse()

	if *csvPath == "" {
		log.Fatal("-csv is required")
	}

	db, err := headerdb.NewDB(*dbPath)
	if err != nil {
		log.Fatalf("failed to open header store %s: %v", *dbPath, err)
	}
	defer db.Close()

	if !*skipMigrate {
		if err := db.MigrateUp(*migrationsDir); err != nil {
			log.Fatalf("failed to migrate header store: %v", err)
		}
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("failed to open csv: %v", err)
	}
	defer f.Close()

	source := *sourceFile
	if source == "" {
		source = *csvPath
	}

	n, err := db.ImportCSV(context.Background(), f, *sgs, source)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("imported %d trace headers into %s", n, *dbPath)
}
