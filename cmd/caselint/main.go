package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kirillkom/docintake-eval/internal/config"
	"github.com/kirillkom/docintake-eval/internal/infrastructure/cases"
)

// caselint validates a cases file (and the fixture files it references)
// without touching the intake API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	path := cfg.CasesPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	loader, err := cases.NewLoader(path)
	if err != nil {
		log.Fatalf("caselint: %v", err)
	}

	ctx := context.Background()
	loaded, err := loader.Load(ctx)
	if err != nil {
		log.Fatalf("caselint: %v", err)
	}

	fixtures := cases.NewFixtureDir(cfg.FixturesDir)
	missing := 0
	for _, c := range loaded {
		if _, err := fixtures.Read(ctx, c.Input.FilePath); err != nil {
			fmt.Printf("MISSING  %-30s %s\n", c.Input.Name, c.Input.FilePath)
			missing++
			continue
		}
		fmt.Printf("OK       %-30s %s\n", c.Input.Name, c.Input.FilePath)
	}

	fmt.Printf("%d cases, %d missing fixtures\n", len(loaded), missing)
	if missing > 0 {
		os.Exit(1)
	}
}
