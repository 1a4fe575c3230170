package model

import "time"

// Machine represents a physical vending machine.
// Code is the value printed in the machine's QR/scan code; it is the
// identifier callers use, distinct from the internal ID.
type Machine struct {
	ID        int64  `gorm:"primaryKey"`
	Code      string `gorm:"uniqueIndex;size:64;not null"`
	Name      string `gorm:"size:256;not null"`
	IsActive  bool   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations
	MachineProducts []MachineProduct `gorm:"foreignKey:MachineID"`
}
