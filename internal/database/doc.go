// Package database provides the persistence context for the bookstore.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup (sqlite or postgres), migrations
//	├── books/           # Book CRUD and the buy operation
//	└── purchases/       # Purchase history
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type bound to the shared session:
//
//	db, err := database.NewDatabase(cfg.Database, logger)
//	defer db.Close()
//
//	booksRepo := books.NewRepository(db.DB, logger)
//	purchasesRepo := purchases.NewRepository(db.DB, logger)
//
//	book, err := booksRepo.GetBookByID(123)
//
// # Schema
//
// Three tables are migrated: publishers, books and purchases. books.publisher_id
// and purchases.book_id are foreign keys with ON DELETE RESTRICT, so a parent
// row cannot be removed while children still reference it. Required text
// columns carry NOT NULL and a non-empty CHECK, which makes a missing value fail
// at write time. Prices are decimal(18,2).
//
// For sqlite the connection string always enables foreign key enforcement.
package database
