package backoffice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/notify"
	"github.com/retailops/storeadmin/internal/state"
	"github.com/retailops/storeadmin/internal/util"
)

// InventoryModule manages stock levels and low-stock alerting.
type InventoryModule struct {
	api    *api.Client
	store  *state.Store
	center *notify.Center
	log    *zap.Logger
}

// NewInventoryModule wires an inventory module. A nil logger disables
// logging.
func NewInventoryModule(c *api.Client, st *state.Store, center *notify.Center, log *zap.Logger) *InventoryModule {
	if log == nil {
		log = zap.NewNop()
	}
	return &InventoryModule{api: c, store: st, center: center, log: log}
}

// Init loads the inventory and raises a low-stock alert when warranted.
// The returned toast is nil when nothing is low.
func (m *InventoryModule) Init(ctx context.Context) (*notify.Toast, error) {
	if _, err := m.Load(ctx); err != nil {
		return nil, err
	}
	return m.CheckLowStock(ctx)
}

// Load fetches all stock levels and commits them to the snapshot.
func (m *InventoryModule) Load(ctx context.Context) ([]models.InventoryItem, error) {
	token := m.store.Begin(state.Inventory)
	list, err := m.api.Inventory.List(ctx)
	if err != nil {
		m.log.Error("loading inventory failed", zap.Error(err))
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	m.store.SetInventory(token, list)
	return list, nil
}

// AdjustStock applies a signed stock adjustment to one product, then
// reloads the inventory.
func (m *InventoryModule) AdjustStock(ctx context.Context, productID int, adj api.StockAdjustment) (models.InventoryItem, error) {
	item, err := m.api.Inventory.UpdateStock(ctx, productID, adj)
	if err != nil {
		m.log.Error("adjusting stock failed", zap.Int("productId", productID), zap.Error(err))
		return models.InventoryItem{}, fmt.Errorf("adjust stock of product %d: %w", productID, err)
	}
	if _, err := m.Load(ctx); err != nil {
		return item, err
	}
	return item, nil
}

// History fetches the stock movement history of one product.
func (m *InventoryModule) History(ctx context.Context, productID int) ([]models.StockMovement, error) {
	hist, err := m.api.Inventory.History(ctx, productID)
	if err != nil {
		m.log.Error("loading stock history failed", zap.Int("productId", productID), zap.Error(err))
		return nil, fmt.Errorf("load stock history of product %d: %w", productID, err)
	}
	return hist, nil
}

// CheckLowStock fetches the inventory and flags every item at or below
// its threshold. When any item is low it pushes exactly one notification
// and returns the matching toast; otherwise it returns nil.
func (m *InventoryModule) CheckLowStock(ctx context.Context) (*notify.Toast, error) {
	items, err := m.api.Inventory.List(ctx)
	if err != nil {
		m.log.Error("low stock check failed", zap.Error(err))
		return nil, fmt.Errorf("check low stock: %w", err)
	}

	low := LowStockItems(items)
	if len(low) == 0 {
		return nil, nil
	}

	n := models.Notification{
		ID:        util.NewID(),
		Type:      models.NotificationWarning,
		Message:   fmt.Sprintf("%d product(s) are low in stock", len(low)),
		Timestamp: time.Now(),
		Products:  low,
	}
	m.center.Push(n)
	return m.center.Toast(n), nil
}

// LowStock returns the low-stock items of the current snapshot.
func (m *InventoryModule) LowStock() []models.InventoryItem {
	return LowStockItems(m.store.Inventory())
}

// LowStockItems filters items whose quantity is at or below their
// threshold. Equality flags the item.
func LowStockItems(items []models.InventoryItem) []models.InventoryItem {
	var low []models.InventoryItem
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	return low
}
