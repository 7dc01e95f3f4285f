package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retailops/storeadmin/internal/models"
)

// StatusUpdate is the body of an order status change.
type StatusUpdate struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// OrdersService groups the /orders endpoints.
type OrdersService struct {
	c *Client
}

// List fetches all orders.
func (s *OrdersService) List(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	err := s.c.do(ctx, http.MethodGet, "/orders", nil, &out)
	return out, err
}

// Get fetches one order by ID.
func (s *OrdersService) Get(ctx context.Context, id int) (models.Order, error) {
	var out models.Order
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &out)
	return out, err
}

// Create places a new order. The backend fills the customer snapshot,
// computes the money breakdown and assigns the initial status.
func (s *OrdersService) Create(ctx context.Context, o models.Order) (models.Order, error) {
	var out models.Order
	err := s.c.do(ctx, http.MethodPost, "/orders", o, &out)
	return out, err
}

// UpdateStatus changes the status of an order via the status sub-resource.
func (s *OrdersService) UpdateStatus(ctx context.Context, id int, upd StatusUpdate) (models.Order, error) {
	var out models.Order
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", id), upd, &out)
	return out, err
}
