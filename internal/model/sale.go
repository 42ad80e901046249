package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an append-only order record. Quantity and total price are recorded
// as supplied by the caller; stock is not decremented and the total is not
// recomputed against the catalog price.
type Sale struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	ProductID  uint            `json:"product_id" gorm:"not null;index"`
	UserID     uint            `json:"user_id" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	TotalPrice decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
}
