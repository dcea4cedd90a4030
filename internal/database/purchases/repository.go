// Package purchases provides database operations for the purchase history.
package purchases

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/entities"
)

// Repository handles purchase database operations.
type Repository struct {
	db     *gorm.DB
	logger *log.Logger
}

// NewRepository creates a new purchases repository.
func NewRepository(db *gorm.DB, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.Default()
	}
	return &Repository{db: db, logger: logger}
}

// GetAllPurchases retrieves every purchase with its book. Results come back in
// no guaranteed order.
func (r *Repository) GetAllPurchases() ([]entities.Purchase, error) {
	var purchases []entities.Purchase
	err := r.db.Joins("Book").Find(&purchases).Error
	return purchases, err
}

// InsertPurchase persists purchase and returns it with its generated ID. The
// book itself is never written; only its ID is taken when BookID is unset.
func (r *Repository) InsertPurchase(purchase *entities.Purchase) (*entities.Purchase, error) {
	if purchase.BookID == 0 && purchase.Book != nil {
		purchase.BookID = purchase.Book.ID
	}
	if purchase.PurchaseDate.IsZero() {
		purchase.PurchaseDate = time.Now()
	}

	if err := r.db.Omit("Book").Create(purchase).Error; err != nil {
		return nil, fmt.Errorf("failed to insert purchase for book %d: %w", purchase.BookID, err)
	}

	r.logger.Debug("purchase inserted", "id", purchase.ID, "book_id", purchase.BookID)
	return purchase, nil
}
