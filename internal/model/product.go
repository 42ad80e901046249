package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an approved, publicly listable catalog entry. Rows are created
// only by the moderation approve transition; the seller phone is dropped on
// the way in because it is not part of the catalog schema.
type Product struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	SellerName         string          `json:"seller_name" gorm:"size:255;not null"`
	SellerEmail        string          `json:"seller_email" gorm:"size:255;not null"`
	ProductName        string          `json:"product_name" gorm:"size:255;not null"`
	ProductCategory    string          `json:"product_category" gorm:"size:100;not null;index"`
	ProductDescription string          `json:"product_description" gorm:"type:text"`
	ProductPrice       decimal.Decimal `json:"product_price" gorm:"type:decimal(10,2);not null"`
	ProductQuantity    int             `json:"product_quantity" gorm:"not null"`
	ProductImage       string          `json:"product_image,omitempty" gorm:"size:512"`
	CreatedAt          time.Time       `json:"created_at"`
}
