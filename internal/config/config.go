package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"   // Embedded file database (default)
	DriverPostgres Driver = "postgres" // Server database addressed by host/port/name
)

type AuthMode string

const (
	AuthModeTrusted  AuthMode = "trusted"  // Rely on the server trusting the OS user, no password in the DSN
	AuthModePassword AuthMode = "password" // Username and password are sent to the server
)

var (
	ErrUnsupportedDriver   = errors.New("unsupported database driver")
	ErrUnsupportedAuthMode = errors.New("unsupported database auth mode")
)

type (
	Config struct {
		Database
		Log
		Shell
	}

	Database struct {
		Driver   Driver
		Path     string // sqlite file
		Host     string
		Port     int
		Name     string
		AuthMode AuthMode
		User     string
		Password string
		SSLMode  string
		DSN      string // Overrides every other connection setting when set
		LogLevel string // gorm logger level: silent, error, warn, info
	}
	Log struct {
		Level string
	}
	Shell struct {
		CurrencySymbol string
	}
)

// NewConfig reads configuration from the environment and, if BOOKSTORE_CONFIG
// names a file, from that file. Environment variables win over file values.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_host", "localhost")
	v.SetDefault("database_port", 5432)
	v.SetDefault("database_name", DefaultDatabaseName)
	v.SetDefault("database_auth_mode", string(AuthModeTrusted))
	v.SetDefault("database_user", "")
	v.SetDefault("database_password", "")
	v.SetDefault("database_sslmode", "disable")
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("log_level", "info")
	v.SetDefault("currency_symbol", "$")

	if path := v.GetString("BOOKSTORE_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Database: Database{
			Driver:   Driver(strings.ToLower(v.GetString("DATABASE_DRIVER"))),
			Path:     v.GetString("DATABASE_PATH"),
			Host:     v.GetString("DATABASE_HOST"),
			Port:     v.GetInt("DATABASE_PORT"),
			Name:     v.GetString("DATABASE_NAME"),
			AuthMode: AuthMode(strings.ToLower(v.GetString("DATABASE_AUTH_MODE"))),
			User:     v.GetString("DATABASE_USER"),
			Password: v.GetString("DATABASE_PASSWORD"),
			SSLMode:  v.GetString("DATABASE_SSLMODE"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
		},
		Shell: Shell{
			CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver)
	}
	switch c.Database.AuthMode {
	case AuthModeTrusted, AuthModePassword:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedAuthMode, c.Database.AuthMode)
	}
	return nil
}

// ConnectionString builds the driver-specific DSN.
func (d Database) ConnectionString() (string, error) {
	switch d.Driver {
	case DriverSQLite:
		dsn := d.DSN
		if dsn == "" {
			dsn = d.Path
		}
		// go-sqlite3 leaves foreign keys off unless asked
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "_foreign_keys=on", nil
	case DriverPostgres:
		if d.DSN != "" {
			return d.DSN, nil
		}
		u := url.URL{
			Scheme: "postgres",
			Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
			Path:   "/" + d.Name,
		}
		if d.AuthMode == AuthModePassword {
			u.User = url.UserPassword(d.User, d.Password)
		} else if d.User != "" {
			u.User = url.User(d.User)
		}
		q := url.Values{}
		if d.SSLMode != "" {
			q.Set("sslmode", d.SSLMode)
		}
		u.RawQuery = q.Encode()
		return u.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, d.Driver)
	}
}
