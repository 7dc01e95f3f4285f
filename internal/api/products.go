package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/retailops/storeadmin/internal/models"
)

// ProductsService groups the /products endpoints.
type ProductsService struct {
	c *Client
}

// List fetches all products.
func (s *ProductsService) List(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := s.c.do(ctx, http.MethodGet, "/products", nil, &out)
	return out, err
}

// Get fetches one product by ID.
func (s *ProductsService) Get(ctx context.Context, id int) (models.Product, error) {
	var out models.Product
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out)
	return out, err
}

// Create adds a new product and returns the record as stored.
func (s *ProductsService) Create(ctx context.Context, p models.Product) (models.Product, error) {
	var out models.Product
	err := s.c.do(ctx, http.MethodPost, "/products", p, &out)
	return out, err
}

// Update replaces the product with the given ID.
func (s *ProductsService) Update(ctx context.Context, id int, p models.Product) (models.Product, error) {
	var out models.Product
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), p, &out)
	return out, err
}

// Delete removes the product with the given ID.
func (s *ProductsService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// CategoriesService groups the /categories endpoints.
type CategoriesService struct {
	c *Client
}

// List fetches all categories.
func (s *CategoriesService) List(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	err := s.c.do(ctx, http.MethodGet, "/categories", nil, &out)
	return out, err
}

// Create adds a new category.
func (s *CategoriesService) Create(ctx context.Context, c models.Category) (models.Category, error) {
	var out models.Category
	err := s.c.do(ctx, http.MethodPost, "/categories", c, &out)
	return out, err
}
