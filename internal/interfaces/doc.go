// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - BookStore: book catalogue and the buy operation (internal/shell/shell.go)
//   - PurchaseStore: purchase history (internal/shell/shell.go)
//
// Both are implemented by gorm-backed repositories under internal/database.
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., stock levels):
//
//  1. Create sub-package: internal/database/stock/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB, logger *log.Logger) *Repository
//
//  3. Register its entities in database.Models so they are migrated
//
//  4. Add compile-time check:
//
//     var _ shell.StockStore = (*stock.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go.
package interfaces
