package database

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/entities"
	"github.com/mrlokans/bookstore/internal/logging"
)

// Database is the persistence context shared by the repositories for the
// lifetime of one run.
type Database struct {
	DB *gorm.DB
}

// Models lists every entity mapped by the persistence context, parents first.
func Models() []interface{} {
	return []interface{}{
		&entities.Publisher{},
		&entities.Book{},
		&entities.Purchase{},
	}
}

func NewDatabase(cfg config.Database, logger *log.Logger) (*Database, error) {
	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logging.NewGormLogger(logger, cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(Models()...); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("database initialized", "driver", cfg.Driver, "target", describeTarget(cfg))

	return &Database{DB: db}, nil
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	dsn, err := cfg.ConnectionString()
	if err != nil {
		return nil, err
	}
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return sqlite.Open(dsn), nil
	}
}

// describeTarget names the database without leaking credentials.
func describeTarget(cfg config.Database) string {
	switch {
	case cfg.DSN != "":
		return "custom dsn"
	case cfg.Driver == config.DriverPostgres:
		return fmt.Sprintf("%s:%d/%s", cfg.Host, cfg.Port, cfg.Name)
	default:
		return cfg.Path
	}
}

// Ping checks that the database is still reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
