// Package books provides database operations for the book catalogue and the
// buy operation.
//
// This package implements the shell.BookStore interface defined in
// internal/shell/shell.go.
//
// # Interface Implementation
//
//	var _ shell.BookStore = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db, logger)
//	book, err := repo.GetBookByID(123)
package books

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/entities"
)

// ErrBookNotFound is returned when no book matches the requested ID.
var ErrBookNotFound = errors.New("book not found")

// Repository handles all book database operations.
type Repository struct {
	db     *gorm.DB
	logger *log.Logger
	now    func() time.Time
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.Default()
	}
	return &Repository{db: db, logger: logger, now: time.Now}
}

// SetClock replaces the clock used to stamp purchases.
func (r *Repository) SetClock(now func() time.Time) {
	r.now = now
}

// InsertBook creates a book. A publisher with ID 0 is matched by name against
// existing publishers and created when none exists.
func (r *Repository) InsertBook(book *entities.Book) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := resolvePublisher(tx, book); err != nil {
			return err
		}
		return tx.Omit("Publisher").Create(book).Error
	})
	if err != nil {
		return fmt.Errorf("failed to insert book %q: %w", book.Title, err)
	}
	r.logger.Info("book inserted", "id", book.ID, "title", book.Title, "publisher_id", book.PublisherID)
	return nil
}

// UpdateBook overwrites title, author, price and publisher of an existing book.
func (r *Repository) UpdateBook(book *entities.Book) error {
	if book.ID == 0 {
		return ErrBookNotFound
	}
	book.Price = entities.NewPrice(book.Price.Decimal)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := resolvePublisher(tx, book); err != nil {
			return err
		}
		result := tx.Model(book).Select("Title", "Author", "Price", "PublisherID").Updates(book)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBookNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update book %d: %w", book.ID, err)
	}
	r.logger.Info("book updated", "id", book.ID)
	return nil
}

// GetBookByID retrieves a book with its publisher.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Joins("Publisher").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetAllBooks retrieves every book with its publisher. Results come back in
// no guaranteed order.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Joins("Publisher").Find(&books).Error
	return books, err
}

// BuyBook records a purchase of book for the given buyer, stamped with the
// current time. Nothing is written when the book does not exist.
func (r *Repository) BuyBook(book *entities.Book, userName, userAddress, creditCardInfo string) (*entities.Purchase, error) {
	if book == nil || book.ID == 0 {
		return nil, ErrBookNotFound
	}

	purchase := &entities.Purchase{
		BookID:         book.ID,
		UserName:       userName,
		UserAddress:    userAddress,
		CreditCardInfo: creditCardInfo,
		PurchaseDate:   r.now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.Book{}).Where("id = ?", book.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrBookNotFound
		}
		return tx.Omit("Book").Create(purchase).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to buy book %d: %w", book.ID, err)
	}

	purchase.Book = book
	r.logger.Info("book purchased", "purchase_id", purchase.ID, "book_id", book.ID)
	return purchase, nil
}
