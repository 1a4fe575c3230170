package model

import "time"

// Product represents a sellable item. Products are managed by external
// administration tooling; this service only reads them.
type Product struct {
	ID          int64   `gorm:"primaryKey"`
	SKU         string  `gorm:"uniqueIndex;size:64;not null"`
	Name        string  `gorm:"size:256;not null"`
	Description *string `gorm:"size:1024"`
	ImageURL    *string `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
