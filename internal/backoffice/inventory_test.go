package backoffice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/models"
)

func seedProduct(t *testing.T, e *env, name string, stock, threshold int) models.Product {
	t.Helper()
	p, err := e.products.Add(context.Background(), models.Product{Name: name, Price: 10.0, Stock: stock})
	if err != nil {
		t.Fatalf("seeding product: %v", err)
	}
	e.backend.SetThreshold(p.ID, threshold)
	return p
}

func TestInventoryModule_LoadDerivesFromProducts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := seedProduct(t, e, "Lamp", 7, 5)

	items, err := e.inventory.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ProductID != p.ID || items[0].ProductName != "Lamp" || items[0].Quantity != 7 {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestInventoryModule_LowStockNotification(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// One product sitting at 5 against a threshold of 10 must raise
	// exactly one notification.
	seedProduct(t, e, "Lamp", 5, 10)
	seedProduct(t, e, "Desk", 50, 10)

	toast, err := e.inventory.CheckLowStock(ctx)
	if err != nil {
		t.Fatalf("CheckLowStock: %v", err)
	}
	if toast == nil {
		t.Fatal("expected a toast for the low item")
	}
	defer toast.Dismiss()

	if e.center.Count() != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", e.center.Count())
	}
	n := e.center.Notifications()[0]
	if n.Type != models.NotificationWarning {
		t.Errorf("expected warning type, got %q", n.Type)
	}
	if n.Message != "1 product(s) are low in stock" {
		t.Errorf("unexpected message: %q", n.Message)
	}
	if len(n.Products) != 1 || n.Products[0].ProductName != "Lamp" {
		t.Errorf("expected the low item attached, got %+v", n.Products)
	}
}

func TestInventoryModule_AtThresholdIsLow(t *testing.T) {
	e := newEnv(t)
	seedProduct(t, e, "Lamp", 10, 10)

	toast, err := e.inventory.CheckLowStock(context.Background())
	if err != nil {
		t.Fatalf("CheckLowStock: %v", err)
	}
	if toast == nil {
		t.Fatal("expected an item exactly at its threshold to be flagged")
	}
	toast.Dismiss()
}

func TestInventoryModule_NothingLowMeansNoToast(t *testing.T) {
	e := newEnv(t)
	seedProduct(t, e, "Lamp", 11, 10)

	toast, err := e.inventory.CheckLowStock(context.Background())
	if err != nil {
		t.Fatalf("CheckLowStock: %v", err)
	}
	if toast != nil {
		t.Fatal("expected no toast when nothing is low")
	}
	if e.center.Count() != 0 {
		t.Fatalf("expected no notifications, got %d", e.center.Count())
	}
}

func TestInventoryModule_AdjustStockReloads(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := seedProduct(t, e, "Lamp", 7, 5)

	item, err := e.inventory.AdjustStock(ctx, p.ID, api.StockAdjustment{
		Quantity: -3,
		Reason:   models.ReasonDamage,
		Notes:    "dropped in transit",
	})
	if err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if item.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", item.Quantity)
	}

	listed := e.store.Inventory()
	if len(listed) != 1 || listed[0].Quantity != 4 {
		t.Fatalf("expected snapshot to hold new quantity, got %+v", listed)
	}
}

func TestInventoryModule_AdjustBelowZeroRejected(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := seedProduct(t, e, "Lamp", 2, 5)

	_, err := e.inventory.AdjustStock(ctx, p.ID, api.StockAdjustment{Quantity: -5, Reason: models.ReasonOther})

	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *api.HTTPError, got %T: %v", err, err)
	}
	if httpErr.Status != http.StatusConflict {
		t.Errorf("expected 409, got %d", httpErr.Status)
	}

	// The rejected adjustment must not change the stock level.
	items, err := e.inventory.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", items[0].Quantity)
	}
}

func TestInventoryModule_History(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	p := seedProduct(t, e, "Lamp", 10, 5)

	if _, err := e.inventory.AdjustStock(ctx, p.ID, api.StockAdjustment{Quantity: 5, Reason: models.ReasonRestock}); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if _, err := e.inventory.AdjustStock(ctx, p.ID, api.StockAdjustment{Quantity: -2, Reason: models.ReasonReturn, Notes: "wrong color"}); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}

	hist, err := e.inventory.History(ctx, p.ID)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("expected 2 movements, got %d", len(hist))
	}
	if hist[0].Adjustment != 5 || hist[0].Reason != models.ReasonRestock {
		t.Errorf("unexpected first movement: %+v", hist[0])
	}
	if hist[1].Adjustment != -2 || hist[1].Notes != "wrong color" {
		t.Errorf("unexpected second movement: %+v", hist[1])
	}
}

func TestLowStockItems(t *testing.T) {
	items := []models.InventoryItem{
		{ProductID: 1, Quantity: 5, LowStockThreshold: 10},
		{ProductID: 2, Quantity: 10, LowStockThreshold: 10},
		{ProductID: 3, Quantity: 11, LowStockThreshold: 10},
	}

	low := LowStockItems(items)
	if len(low) != 2 {
		t.Fatalf("expected 2 low items, got %d", len(low))
	}
	if low[0].ProductID != 1 || low[1].ProductID != 2 {
		t.Errorf("unexpected low set: %+v", low)
	}
}
