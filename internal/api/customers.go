package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retailops/storeadmin/internal/models"
)

// CustomersService groups the /customers endpoints.
type CustomersService struct {
	c *Client
}

// List fetches all customers.
func (s *CustomersService) List(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	err := s.c.do(ctx, http.MethodGet, "/customers", nil, &out)
	return out, err
}

// Get fetches one customer by ID.
func (s *CustomersService) Get(ctx context.Context, id int) (models.Customer, error) {
	var out models.Customer
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, &out)
	return out, err
}

// Create adds a new customer.
func (s *CustomersService) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	var out models.Customer
	err := s.c.do(ctx, http.MethodPost, "/customers", c, &out)
	return out, err
}

// Update replaces the customer with the given ID.
func (s *CustomersService) Update(ctx context.Context, id int, c models.Customer) (models.Customer, error) {
	var out models.Customer
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), c, &out)
	return out, err
}

// Orders fetches the order history of one customer.
func (s *CustomersService) Orders(ctx context.Context, id int) ([]models.Order, error) {
	var out []models.Order
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d/orders", id), nil, &out)
	return out, err
}
