package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/entrypoint"
	"github.com/mrlokans/bookstore/internal/logging"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(os.Stderr, cfg.Log.Level)
	logger.Debug("build", "version", Version, "commit", Commit)

	// Run returns before exiting so its deferred database close always happens
	if err := entrypoint.Run(cfg, Version, os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("bookstore failed", "error", err)
		os.Exit(1)
	}
}
