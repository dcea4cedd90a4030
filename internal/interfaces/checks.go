package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookstore/internal/database/books"
	"github.com/mrlokans/bookstore/internal/database/purchases"
	"github.com/mrlokans/bookstore/internal/shell"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// BookStore implementations
var _ shell.BookStore = (*books.Repository)(nil)

// PurchaseStore implementations
var _ shell.PurchaseStore = (*purchases.Repository)(nil)
