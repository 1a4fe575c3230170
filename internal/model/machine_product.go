package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MachineProduct links a product to a machine with machine-specific
// pricing. A (machine, product) pair is assumed to have at most one
// active row at a time; that invariant is maintained by the external
// administration tooling, not enforced here.
type MachineProduct struct {
	ID        int64           `gorm:"primaryKey"`
	MachineID int64           `gorm:"not null;index:idx_machine_product"`
	ProductID int64           `gorm:"not null;index:idx_machine_product"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency  string          `gorm:"size:3;not null"`
	IsActive  bool            `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations
	Machine Machine `gorm:"constraint:OnDelete:CASCADE"`
	Product Product `gorm:"constraint:OnDelete:CASCADE"`
}
