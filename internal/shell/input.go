package shell

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mrlokans/bookstore/internal/entities"
)

// ErrInvalidInput marks operator input that could not be parsed. The shell
// re-prompts instead of giving up.
var ErrInvalidInput = errors.New("invalid input")

// ParsePrice reads a non-negative decimal price such as "12.50" and rounds it
// to two fractional digits.
func ParsePrice(s string) (entities.Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return entities.Price{}, fmt.Errorf("%w: %q is not a price", ErrInvalidInput, s)
	}
	if amount.IsNegative() {
		return entities.Price{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	price := entities.NewPrice(amount)
	if !price.Fits() {
		return entities.Price{}, fmt.Errorf("%w: price must be below %s", ErrInvalidInput, entities.MaxPrice)
	}
	return price, nil
}

// ParseID reads a book identifier.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a book ID", ErrInvalidInput, s)
	}
	return uint(id), nil
}
