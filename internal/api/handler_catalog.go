package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductResponse represents a single product in the catalog response.
// ID carries the product's SKU.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    *string `json:"image_url"`
}

// MachineProductsResponse is the full catalog payload for one machine.
// MachineID carries the machine's scan code, not its internal ID; the
// internal ID never leaves this service.
type MachineProductsResponse struct {
	MachineID   string            `json:"machine_id"`
	MachineName string            `json:"machine_name"`
	Products    []ProductResponse `json:"products"`
}

// GetMachineProducts handles the GET /machines/:machine_code/products
// request: resolve the machine from its scan code, then list its active
// priced products sorted by product name.
func (h *Handler) GetMachineProducts(c *gin.Context) {
	ctx := c.Request.Context()
	code := c.Param("machine_code")

	machine, err := h.store.MachineByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Machine not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve machine"})
		return
	}

	entries, err := h.store.ActiveCatalog(ctx, machine.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}

	products := make([]ProductResponse, 0, len(entries))
	for _, e := range entries {
		products = append(products, ProductResponse{
			ID:          e.SKU,
			Name:        e.Name,
			Description: e.Description,
			// Prices are stored as exact decimals; the float conversion
			// happens only here, at the JSON boundary.
			Price:    e.Price.InexactFloat64(),
			Currency: e.Currency,
			ImageURL: e.ImageURL,
		})
	}

	c.JSON(http.StatusOK, MachineProductsResponse{
		MachineID:   machine.Code,
		MachineName: machine.Name,
		Products:    products,
	})
}
