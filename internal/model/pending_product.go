package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingProduct is a seller submission awaiting moderation. A row exists
// only while the submission is undecided: Approve moves it into the catalog
// and Reject deletes it, so a pending row and its approved counterpart never
// coexist.
type PendingProduct struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	SellerName         string          `json:"seller_name" gorm:"size:255;not null"`
	SellerEmail        string          `json:"seller_email" gorm:"size:255;not null;index"`
	SellerPhone        string          `json:"seller_phone" gorm:"size:32"`
	ProductName        string          `json:"product_name" gorm:"size:255;not null"`
	ProductCategory    string          `json:"product_category" gorm:"size:100;not null;index"`
	ProductDescription string          `json:"product_description" gorm:"type:text"`
	ProductPrice       decimal.Decimal `json:"product_price" gorm:"type:decimal(10,2);not null"`
	ProductQuantity    int             `json:"product_quantity" gorm:"not null"`
	ProductImage       string          `json:"product_image,omitempty" gorm:"size:512"`
	CreatedAt          time.Time       `json:"created_at"`
}

// TableName overrides the default pluralization.
func (PendingProduct) TableName() string {
	return "products_pending"
}
