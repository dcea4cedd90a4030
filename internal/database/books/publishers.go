package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/entities"
)

// resolvePublisher points book.PublisherID at its publisher, reusing an
// existing publisher of the same name or creating a new one.
func resolvePublisher(tx *gorm.DB, book *entities.Book) error {
	if book.Publisher == nil {
		return nil
	}
	if book.Publisher.ID != 0 {
		book.PublisherID = book.Publisher.ID
		return nil
	}

	var existing entities.Publisher
	err := tx.Where("name = ?", book.Publisher.Name).First(&existing).Error
	switch {
	case err == nil:
		book.Publisher = &existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := tx.Create(book.Publisher).Error; err != nil {
			return err
		}
	default:
		return err
	}

	book.PublisherID = book.Publisher.ID
	return nil
}
