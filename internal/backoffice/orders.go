package backoffice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/state"
)

// OrdersModule manages orders.
type OrdersModule struct {
	api   *api.Client
	store *state.Store
	log   *zap.Logger
}

// NewOrdersModule wires an orders module. A nil logger disables logging.
func NewOrdersModule(c *api.Client, st *state.Store, log *zap.Logger) *OrdersModule {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrdersModule{api: c, store: st, log: log}
}

// Load fetches all orders and commits them to the snapshot.
func (m *OrdersModule) Load(ctx context.Context) ([]models.Order, error) {
	token := m.store.Begin(state.Orders)
	list, err := m.api.Orders.List(ctx)
	if err != nil {
		m.log.Error("loading orders failed", zap.Error(err))
		return nil, fmt.Errorf("load orders: %w", err)
	}
	m.store.SetOrders(token, list)
	return list, nil
}

// Create places a new order, then reloads the listing.
func (m *OrdersModule) Create(ctx context.Context, o models.Order) (models.Order, error) {
	created, err := m.api.Orders.Create(ctx, o)
	if err != nil {
		m.log.Error("creating order failed", zap.Error(err))
		return models.Order{}, fmt.Errorf("create order: %w", err)
	}
	if _, err := m.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// UpdateStatus changes an order's status, then reloads the listing.
func (m *OrdersModule) UpdateStatus(ctx context.Context, id int, status, notes string) (models.Order, error) {
	updated, err := m.api.Orders.UpdateStatus(ctx, id, api.StatusUpdate{Status: status, Notes: notes})
	if err != nil {
		m.log.Error("updating order status failed", zap.Int("id", id), zap.Error(err))
		return models.Order{}, fmt.Errorf("update status of order %d: %w", id, err)
	}
	if _, err := m.Load(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// OrderLine is one order item with its line total.
type OrderLine struct {
	models.OrderItem
	LineTotal float64
}

// OrderDetail is the read-only detail view of one order.
type OrderDetail struct {
	Order models.Order
	Lines []OrderLine
}

// Detail fetches one order and computes its per-line totals.
func (m *OrdersModule) Detail(ctx context.Context, id int) (*OrderDetail, error) {
	o, err := m.api.Orders.Get(ctx, id)
	if err != nil {
		m.log.Error("loading order details failed", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("load order %d: %w", id, err)
	}

	lines := make([]OrderLine, len(o.Items))
	for i, item := range o.Items {
		lt, _ := decimal.NewFromFloat(item.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity))).Float64()
		lines[i] = OrderLine{OrderItem: item, LineTotal: lt}
	}
	return &OrderDetail{Order: o, Lines: lines}, nil
}
