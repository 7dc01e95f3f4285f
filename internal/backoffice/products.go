// Package backoffice contains the feature modules of the admin client.
// Each module owns one backend resource: it loads listings into the state
// store, submits mutations through the API client, and reloads the full
// listing after every successful mutation.
package backoffice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/state"
)

// ProductsModule manages the product catalog and its categories.
type ProductsModule struct {
	api   *api.Client
	store *state.Store
	log   *zap.Logger
}

// NewProductsModule wires a products module. A nil logger disables logging.
func NewProductsModule(c *api.Client, st *state.Store, log *zap.Logger) *ProductsModule {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductsModule{api: c, store: st, log: log}
}

// Load fetches all products and commits them to the snapshot. On failure
// the prior snapshot is left untouched.
func (m *ProductsModule) Load(ctx context.Context) ([]models.Product, error) {
	token := m.store.Begin(state.Products)
	list, err := m.api.Products.List(ctx)
	if err != nil {
		m.log.Error("loading products failed", zap.Error(err))
		return nil, fmt.Errorf("load products: %w", err)
	}
	m.store.SetProducts(token, list)
	return list, nil
}

// Get fetches one product for a detail view.
func (m *ProductsModule) Get(ctx context.Context, id int) (models.Product, error) {
	p, err := m.api.Products.Get(ctx, id)
	if err != nil {
		m.log.Error("loading product details failed", zap.Int("id", id), zap.Error(err))
		return models.Product{}, fmt.Errorf("load product %d: %w", id, err)
	}
	return p, nil
}

// Add validates and creates a product, then reloads the listing.
func (m *ProductsModule) Add(ctx context.Context, p models.Product) (models.Product, error) {
	if errs := validateProduct(p); len(errs) > 0 {
		return models.Product{}, errs
	}
	created, err := m.api.Products.Create(ctx, p)
	if err != nil {
		m.log.Error("adding product failed", zap.Error(err))
		return models.Product{}, fmt.Errorf("add product: %w", err)
	}
	if _, err := m.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Update validates and replaces a product, then reloads the listing.
func (m *ProductsModule) Update(ctx context.Context, id int, p models.Product) (models.Product, error) {
	if errs := validateProduct(p); len(errs) > 0 {
		return models.Product{}, errs
	}
	updated, err := m.api.Products.Update(ctx, id, p)
	if err != nil {
		m.log.Error("updating product failed", zap.Int("id", id), zap.Error(err))
		return models.Product{}, fmt.Errorf("update product %d: %w", id, err)
	}
	if _, err := m.Load(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// Delete removes a product, then reloads the listing.
func (m *ProductsModule) Delete(ctx context.Context, id int) error {
	if err := m.api.Products.Delete(ctx, id); err != nil {
		m.log.Error("deleting product failed", zap.Int("id", id), zap.Error(err))
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	_, err := m.Load(ctx)
	return err
}

// LoadCategories fetches all categories and commits them to the snapshot.
func (m *ProductsModule) LoadCategories(ctx context.Context) ([]models.Category, error) {
	token := m.store.Begin(state.Categories)
	list, err := m.api.Categories.List(ctx)
	if err != nil {
		m.log.Error("loading categories failed", zap.Error(err))
		return nil, fmt.Errorf("load categories: %w", err)
	}
	m.store.SetCategories(token, list)
	return list, nil
}

// AddCategory creates a category, then reloads the category listing.
func (m *ProductsModule) AddCategory(ctx context.Context, c models.Category) (models.Category, error) {
	created, err := m.api.Categories.Create(ctx, c)
	if err != nil {
		m.log.Error("adding category failed", zap.Error(err))
		return models.Category{}, fmt.Errorf("add category: %w", err)
	}
	if _, err := m.LoadCategories(ctx); err != nil {
		return created, err
	}
	return created, nil
}
