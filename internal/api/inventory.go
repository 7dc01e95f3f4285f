package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retailops/storeadmin/internal/models"
)

// StockAdjustment is the body of a stock update. Quantity is a signed
// delta applied to the current stock level.
type StockAdjustment struct {
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// InventoryService groups the /inventory endpoints.
type InventoryService struct {
	c *Client
}

// List fetches the stock levels of all products.
func (s *InventoryService) List(ctx context.Context) ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	err := s.c.do(ctx, http.MethodGet, "/inventory", nil, &out)
	return out, err
}

// UpdateStock applies a stock adjustment to one product.
func (s *InventoryService) UpdateStock(ctx context.Context, productID int, adj StockAdjustment) (models.InventoryItem, error) {
	var out models.InventoryItem
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/inventory/%d/stock", productID), adj, &out)
	return out, err
}

// History fetches the stock movement history of one product.
func (s *InventoryService) History(ctx context.Context, productID int) ([]models.StockMovement, error) {
	var out []models.StockMovement
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/inventory/%d/history", productID), nil, &out)
	return out, err
}
