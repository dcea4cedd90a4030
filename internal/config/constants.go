package config

const (
	// DefaultDatabasePath is the default sqlite file for the bookstore
	DefaultDatabasePath = "./bookstore.db"

	// DefaultDatabaseName is the default database on a postgres server
	DefaultDatabaseName = "books"
)
