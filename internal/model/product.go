package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents an item in the catalog. Price is stored with two decimal
// places of precision; UpdatedAt is nil until the first mutation.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"size:200;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(18,2);not null"`
	Stock       int             `json:"stock" gorm:"not null;default:0"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}
