package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/database/books"
	"github.com/mrlokans/bookstore/internal/database/purchases"
	"github.com/mrlokans/bookstore/internal/shell"
)

const pingTimeout = 5 * time.Second

// Run opens the database, serves the interactive shell on in/out and closes
// the database on every way out, including an interrupt. Only a failure to
// open the database is returned as an error.
func Run(cfg *config.Config, version string, in io.Reader, out io.Writer, logger *log.Logger) error {
	logger.Info("starting bookstore", "version", version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDatabase(cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
		logger.Info("database closed")
	}()

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		return fmt.Errorf("database is not reachable: %w", err)
	}

	sh := shell.New(shell.Config{
		Books:          books.NewRepository(db.DB, logger),
		Purchases:      purchases.NewRepository(db.DB, logger),
		In:             in,
		Out:            out,
		Logger:         logger,
		CurrencySymbol: cfg.Shell.CurrencySymbol,
	})

	if err := sh.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("interrupted, shutting down")
			return nil
		}
		return err
	}
	return nil
}
