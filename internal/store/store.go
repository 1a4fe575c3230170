package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vendswift-backend/internal/model"
)

// Store defines the read operations the API needs from the database.
type Store interface {
	// DB exposes the underlying handle for migrations and tests.
	DB() *gorm.DB

	// MachineByCode resolves an active machine from its scan code.
	// Returns gorm.ErrRecordNotFound when no active machine matches;
	// the active filter is part of the lookup predicate, so an
	// inactive machine is indistinguishable from a missing one.
	MachineByCode(ctx context.Context, code string) (*model.Machine, error)

	// ActiveCatalog lists the active product rows for a machine,
	// ordered ascending by product name. An active machine with no
	// active rows yields an empty slice, not an error.
	ActiveCatalog(ctx context.Context, machineID int64) ([]CatalogEntry, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) MachineByCode(ctx context.Context, code string) (*model.Machine, error) {
	var machine model.Machine
	if err := s.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&machine).Error; err != nil {
		return nil, err
	}
	return &machine, nil
}

func (s *gormStore) ActiveCatalog(ctx context.Context, machineID int64) ([]CatalogEntry, error) {
	var entries []CatalogEntry
	err := s.db.WithContext(ctx).
		Model(&model.MachineProduct{}).
		Select("products.sku AS sku, products.name AS name, products.description AS description, " +
			"machine_products.price AS price, machine_products.currency AS currency, " +
			"products.image_url AS image_url").
		Joins("JOIN products ON products.id = machine_products.product_id").
		Where("machine_products.machine_id = ? AND machine_products.is_active = ?", machineID, true).
		Order("products.name ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog for machine %d: %w", machineID, err)
	}
	return entries, nil
}
