package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/scamp925/level-up-server/internal/config"
	"github.com/scamp925/level-up-server/internal/service"
	"github.com/scamp925/level-up-server/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run seeds game types and returns the process exit code. Deferred
// cleanup runs before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	labels := fs.String("types", "", "Comma-separated game type labels (default: built-in list)")
	outputJSON := fs.Bool("json", false, "Output as JSON")
	timeout := fs.Duration("timeout", 30*time.Second, "Overall timeout")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening %s database: %v\n", cfg.Database.Driver, err)
		return 1
	}
	defer func() { _ = db.Close() }()

	types := service.DefaultGameTypes
	if *labels != "" {
		types = strings.Split(*labels, ",")
	}

	result, err := service.NewSeederService(db.GameTypes).SeedGameTypes(ctx, types)
	if err != nil {
		fmt.Fprintf(stderr, "Error seeding game types: %v\n", err)
		return 1
	}

	if *outputJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
		return 0
	}

	fmt.Fprintf(stdout, "Seeded %d game types (%d already present) in %dms\n", result.Created, result.Skipped, result.Duration)
	for _, id := range result.IDs {
		fmt.Fprintf(stdout, "  %s\n", id)
	}
	return 0
}
