package entrypoint

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookstore/internal/config"
)

func testConfig(dbPath string) *config.Config {
	return &config.Config{
		Database: config.Database{
			Driver:   config.DriverSQLite,
			Path:     dbPath,
			AuthMode: config.AuthModeTrusted,
			LogLevel: "silent",
		},
		Shell: config.Shell{CurrencySymbol: "$"},
	}
}

func TestRun_ExitOption(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "run.db")
	var out, logs bytes.Buffer

	err := Run(testConfig(dbPath), "test", strings.NewReader("5\n"), &out, log.New(&logs))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome to the Book Store")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Contains(t, logs.String(), "database closed")
}

func TestRun_PersistsAcrossRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "run.db")
	cfg := testConfig(dbPath)

	input := "1\nDune\nHerbert\n12.50\nAce\n5\n"
	require.NoError(t, Run(cfg, "test", strings.NewReader(input), io.Discard, log.New(io.Discard)))

	var out bytes.Buffer
	require.NoError(t, Run(cfg, "test", strings.NewReader("2\n5\n"), &out, log.New(io.Discard)))
	assert.Contains(t, out.String(), "ID: 1, Title: Dune, Author: Herbert, Price: $12.50, Publisher: Ace")
}

func TestRun_DatabaseUnavailable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing", "dir", "run.db")
	var out bytes.Buffer

	err := Run(testConfig(dbPath), "test", strings.NewReader("5\n"), &out, log.New(io.Discard))

	assert.Error(t, err)
	assert.Empty(t, out.String())
}
