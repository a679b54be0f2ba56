// Package entity defines the domain entities for the catalog feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Price is the only source of truth for order pricing.
type Product struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	Title       string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Brand       string          `gorm:"size:255;not null"`
	Available   bool            `gorm:"index;not null"`
	Rating      float64         `gorm:"not null"`

	// タグ類はJSON配列として1カラムに保存する
	Category []string `gorm:"serializer:json"`
	Types    []string `gorm:"serializer:json"`
	Images   []string `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
