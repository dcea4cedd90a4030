package entities

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Publisher struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;check:name <> ''" json:"name"`
	// Deleting a publisher that still has books is refused by the database.
	Books []Book `gorm:"foreignKey:PublisherID;constraint:OnDelete:RESTRICT" json:"books,omitempty"`
}

type Book struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null;check:title <> ''" json:"title"`
	Author      string     `gorm:"not null;check:author <> ''" json:"author"`
	Price       Price      `gorm:"not null" json:"price"`
	PublisherID uint       `gorm:"not null;index" json:"publisher_id"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
}

type Purchase struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BookID         uint      `gorm:"not null;index" json:"book_id"`
	Book           *Book     `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"book,omitempty"`
	UserName       string    `gorm:"not null;check:user_name <> ''" json:"user_name"`
	UserAddress    string    `gorm:"not null;check:user_address <> ''" json:"user_address"`
	CreditCardInfo string    `gorm:"not null;check:credit_card_info <> ''" json:"-"` // Stored as entered, never printed
	PurchaseDate   time.Time `gorm:"type:timestamp;serializer:wallclock;not null" json:"purchase_date"`
}

func (Publisher) TableName() string {
	return "publishers"
}

func (Book) TableName() string {
	return "books"
}

func (Purchase) TableName() string {
	return "purchases"
}

// BeforeSave keeps the price exactly representable at the column's scale.
func (b *Book) BeforeSave(tx *gorm.DB) error {
	if !b.Price.Fits() {
		return fmt.Errorf("%w: %s", ErrPriceOutOfRange, b.Price.String())
	}
	b.Price = NewPrice(b.Price.Decimal)
	return nil
}
