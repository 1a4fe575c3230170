package store

import "github.com/shopspring/decimal"

// CatalogEntry is a single priced product row for a machine, as read
// from the machine_products/products join. Price stays decimal here;
// the API layer decides how to render it.
type CatalogEntry struct {
	SKU         string
	Name        string
	Description *string
	Price       decimal.Decimal
	Currency    string
	ImageURL    *string
}
