package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"esa-config/internal/config"
	"esa-config/internal/permissions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := run(os.Stdout, cfg.Export); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

func run(w io.Writer, cfg config.ExportConfig) error {
	format, err := permissions.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var doc any
	switch cfg.Document {
	case "policy":
		doc = permissions.Base()
	case "users":
		doc = permissions.Users()
	case "all", "":
		doc = permissions.NewBundle()
	default:
		return fmt.Errorf("unknown document %q", cfg.Document)
	}
	return permissions.Encode(w, format, doc)
}
