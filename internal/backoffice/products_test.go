package backoffice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/models"
)

func TestProductsModule_AddThenLoad(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.products.Add(ctx, models.Product{
		Name:     "Laptop",
		Category: "Electronics",
		Price:    1500.0,
		Stock:    3,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected server-assigned ID")
	}

	// Add reloads the listing, so the snapshot already holds the product.
	listed := e.store.Products()
	if len(listed) != 1 {
		t.Fatalf("expected 1 product in snapshot, got %d", len(listed))
	}
	if listed[0].Name != "Laptop" || listed[0].Price != 1500.0 {
		t.Errorf("unexpected snapshot entry: %+v", listed[0])
	}
}

func TestProductsModule_AddInvalid(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	tests := []struct {
		name           string
		payload        models.Product
		expectedFields []string
	}{
		{
			name:           "Empty name and price",
			payload:        models.Product{Name: "", Price: 0},
			expectedFields: []string{"Name", "Price"},
		},
		{
			name:           "Empty name only",
			payload:        models.Product{Name: "", Price: 100.0},
			expectedFields: []string{"Name"},
		},
		{
			name:           "Invalid price only",
			payload:        models.Product{Name: "Mouse", Price: -5.0},
			expectedFields: []string{"Price"},
		},
		{
			name:           "Negative stock",
			payload:        models.Product{Name: "Keyboard", Price: 50.0, Stock: -1},
			expectedFields: []string{"Stock"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := e.requests.Load()

			_, err := e.products.Add(ctx, tt.payload)

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T: %v", err, err)
			}
			for _, field := range tt.expectedFields {
				found := false
				for _, fe := range verr {
					if fe.Field == field {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found in %v", field, verr)
				}
			}

			// Validation blocks the submission before any network call.
			if got := e.requests.Load(); got != before {
				t.Errorf("expected no requests, backend saw %d", got-before)
			}
		})
	}
}

func TestProductsModule_UpdateReloads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.products.Add(ctx, models.Product{Name: "Lamp", Price: 10, Stock: 4})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := e.products.Update(ctx, created.ID, models.Product{Name: "Desk Lamp", Price: 12, Stock: 4}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	listed := e.store.Products()
	if len(listed) != 1 || listed[0].Name != "Desk Lamp" {
		t.Fatalf("expected snapshot to hold the updated product, got %+v", listed)
	}
}

func TestProductsModule_DeleteReloads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created, err := e.products.Add(ctx, models.Product{Name: "Lamp", Price: 10})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := e.products.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := e.store.Products(); len(got) != 0 {
		t.Fatalf("expected empty snapshot after delete, got %+v", got)
	}
}

func TestProductsModule_DeleteMissingIsHTTPError(t *testing.T) {
	e := newEnv(t)

	err := e.products.Delete(context.Background(), 999)
	if err == nil {
		t.Fatal("expected error for missing product")
	}

	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *api.HTTPError, got %T: %v", err, err)
	}
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Status)
	}
}

func TestProductsModule_Categories(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.products.AddCategory(ctx, models.Category{Name: "Electronics"}); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if _, err := e.products.AddCategory(ctx, models.Category{Name: "Clothing"}); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}

	listed := e.store.Categories()
	if len(listed) != 2 {
		t.Fatalf("expected 2 categories in snapshot, got %d", len(listed))
	}
}
