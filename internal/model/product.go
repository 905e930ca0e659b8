package model

import (
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Limits of what the products table stores exactly.
const (
	MaxQuantity = math.MaxInt32
	PricePlaces = 2
)

// MaxPrice is the largest value a decimal(12,2) column holds.
var MaxPrice = decimal.RequireFromString("9999999999.99")

type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string          `gorm:"type:text;not null" json:"description" validate:"required"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category"` // nil = uncategorized, no FK on purpose
	Quantity    int             `gorm:"not null" json:"quantity" validate:"gt=0,lte=2147483647"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price" validate:"gt=0,lte=9999999999.99"`
	Unit        string          `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
	ImageURL    string          `gorm:"type:text" json:"imageUrl,omitempty"`
}

// TableName specifies the table name for GORM
func (Product) TableName() string {
	return "products"
}

// InCategory reports whether the product references the given category.
func (p *Product) InCategory(id uuid.UUID) bool {
	return p.CategoryID != nil && *p.CategoryID == id
}

// PriceFitsScale reports whether the price has no more decimal places
// than the column keeps.
func (p *Product) PriceFitsScale() bool {
	return p.Price.Equal(p.Price.Truncate(PricePlaces))
}

// ProductPage is one page of the product listing together with the
// total number of products in the store.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
}
