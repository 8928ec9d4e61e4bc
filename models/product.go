package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a clothing-store catalog entry. The id is assigned by
// the data store; the code is assigned by the user and must stay unique
// among products.
type Product struct {
	ID          int             `gorm:"primaryKey" json:"id"`
	Code        string          `gorm:"uniqueIndex;not null" json:"code"`
	Name        string          `gorm:"size:100;not null" json:"name"`
	ImportDate  Date            `gorm:"type:date;not null" json:"importDate"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	CategoryID  int             `gorm:"not null;index" json:"categoryId"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt,omitempty"`
}

func (p *Product) TableName() string {
	return "products"
}
