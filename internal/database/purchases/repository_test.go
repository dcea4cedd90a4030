package purchases

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mrlokans/bookstore/internal/config"
	"github.com/mrlokans/bookstore/internal/database"
	"github.com/mrlokans/bookstore/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "purchases.db")

	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     dbPath,
		LogLevel: "silent",
	}, log.New(io.Discard))
	require.NoError(t, err)

	repo := NewRepository(db.DB, log.New(io.Discard))

	cleanup := func() {
		db.Close()
	}

	return repo, db.DB, cleanup
}

func createBook(t *testing.T, db *gorm.DB, title string) *entities.Book {
	t.Helper()
	book := &entities.Book{
		Title:     title,
		Author:    "Herbert",
		Price:     entities.NewPrice(decimal.RequireFromString("12.50")),
		Publisher: &entities.Publisher{Name: "Ace"},
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func TestRepository_InsertPurchase(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, db, "Dune")
	when := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	purchase, err := repo.InsertPurchase(&entities.Purchase{
		BookID:         book.ID,
		UserName:       "Alice",
		UserAddress:    "1 Main St",
		CreditCardInfo: "4111-1111-1111-1111",
		PurchaseDate:   when,
	})

	require.NoError(t, err)
	assert.NotZero(t, purchase.ID)
	assert.True(t, when.Equal(purchase.PurchaseDate))
}

func TestRepository_InsertPurchase_RoundTrip(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, db, "Dune")
	inserted, err := repo.InsertPurchase(&entities.Purchase{
		BookID:         book.ID,
		UserName:       "Alice",
		UserAddress:    "1 Main St",
		CreditCardInfo: "4111-1111-1111-1111",
	})
	require.NoError(t, err)

	all, err := repo.GetAllPurchases()
	require.NoError(t, err)
	require.Len(t, all, 1)

	found := all[0]
	assert.Equal(t, inserted.ID, found.ID)
	assert.Equal(t, "Alice", found.UserName)
	assert.Equal(t, "1 Main St", found.UserAddress)
	assert.Equal(t, "4111-1111-1111-1111", found.CreditCardInfo)
	assert.Equal(t, book.ID, found.BookID)
	assert.WithinDuration(t, inserted.PurchaseDate, found.PurchaseDate, time.Second)
}

func TestRepository_InsertPurchase_TakesIDFromBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, db, "Dune")
	book.Title = "changed in memory only"

	purchase, err := repo.InsertPurchase(&entities.Purchase{
		Book:           book,
		UserName:       "Bob",
		UserAddress:    "2 Side St",
		CreditCardInfo: "5500",
	})
	require.NoError(t, err)
	assert.Equal(t, book.ID, purchase.BookID)
	assert.False(t, purchase.PurchaseDate.IsZero())

	var stored entities.Book
	require.NoError(t, db.First(&stored, book.ID).Error)
	assert.Equal(t, "Dune", stored.Title)
}

func TestRepository_InsertPurchase_UnknownBook(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.InsertPurchase(&entities.Purchase{
		BookID:         404,
		UserName:       "Alice",
		UserAddress:    "1 Main St",
		CreditCardInfo: "4111",
	})
	assert.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Purchase{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRepository_InsertPurchase_MissingBuyer(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, db, "Dune")
	_, err := repo.InsertPurchase(&entities.Purchase{
		BookID:         book.ID,
		UserAddress:    "1 Main St",
		CreditCardInfo: "4111",
	})
	assert.Error(t, err)
}

func TestRepository_GetAllPurchases(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	purchases, err := repo.GetAllPurchases()
	require.NoError(t, err)
	assert.Empty(t, purchases)

	dune := createBook(t, db, "Dune")
	hyperion := createBook(t, db, "Hyperion")
	for _, p := range []*entities.Purchase{
		{BookID: dune.ID, UserName: "Alice", UserAddress: "1 Main St", CreditCardInfo: "4111"},
		{BookID: hyperion.ID, UserName: "Bob", UserAddress: "2 Side St", CreditCardInfo: "5500"},
		{BookID: dune.ID, UserName: "Carol", UserAddress: "3 High St", CreditCardInfo: "3700"},
	} {
		_, err := repo.InsertPurchase(p)
		require.NoError(t, err)
	}

	purchases, err = repo.GetAllPurchases()
	require.NoError(t, err)
	require.Len(t, purchases, 3)

	byBuyer := make(map[string]entities.Purchase)
	for _, p := range purchases {
		require.NotNil(t, p.Book, "book not loaded for purchase %d", p.ID)
		assert.Equal(t, p.BookID, p.Book.ID)
		byBuyer[p.UserName] = p
	}
	assert.Equal(t, "Dune", byBuyer["Alice"].Book.Title)
	assert.Equal(t, "Hyperion", byBuyer["Bob"].Book.Title)
	assert.Equal(t, "Dune", byBuyer["Carol"].Book.Title)
}
