package entities

import (
	"database/sql/driver"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// PriceScale is the number of fractional digits kept for prices (decimal(18,2)).
const PriceScale = 2

// MaxPrice is the smallest amount that no longer fits decimal(18,2).
var MaxPrice = decimal.New(1, 16)

var ErrPriceOutOfRange = errors.New("price out of range")

// Price is a fixed-point amount with PriceScale fractional digits.
type Price struct {
	decimal.Decimal
}

// NewPrice rounds d to the stored scale.
func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d.Round(PriceScale)}
}

// Fits reports whether p can be stored without losing digits.
func (p Price) Fits() bool {
	return p.Round(PriceScale).Abs().LessThan(MaxPrice)
}

// Value writes the price as fixed-point text so it never passes through a float.
func (p Price) Value() (driver.Value, error) {
	return p.StringFixed(PriceScale), nil
}

// GormDBDataType returns the column type. A decimal column in sqlite has
// NUMERIC affinity and would turn the text back into a REAL.
func (Price) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "decimal(18,2)"
}
