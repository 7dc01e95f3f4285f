package backoffice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/state"
)

// CustomersModule manages the customer roster.
type CustomersModule struct {
	api   *api.Client
	store *state.Store
	log   *zap.Logger
}

// NewCustomersModule wires a customers module. A nil logger disables logging.
func NewCustomersModule(c *api.Client, st *state.Store, log *zap.Logger) *CustomersModule {
	if log == nil {
		log = zap.NewNop()
	}
	return &CustomersModule{api: c, store: st, log: log}
}

// Load fetches all customers and commits them to the snapshot.
func (m *CustomersModule) Load(ctx context.Context) ([]models.Customer, error) {
	token := m.store.Begin(state.Customers)
	list, err := m.api.Customers.List(ctx)
	if err != nil {
		m.log.Error("loading customers failed", zap.Error(err))
		return nil, fmt.Errorf("load customers: %w", err)
	}
	m.store.SetCustomers(token, list)
	return list, nil
}

// Get fetches one customer for a detail view.
func (m *CustomersModule) Get(ctx context.Context, id int) (models.Customer, error) {
	c, err := m.api.Customers.Get(ctx, id)
	if err != nil {
		m.log.Error("loading customer details failed", zap.Int("id", id), zap.Error(err))
		return models.Customer{}, fmt.Errorf("load customer %d: %w", id, err)
	}
	return c, nil
}

// Add validates and creates a customer, then reloads the listing. An
// invalid email blocks the submission before any network call is made.
func (m *CustomersModule) Add(ctx context.Context, c models.Customer) (models.Customer, error) {
	if errs := validateCustomer(c); len(errs) > 0 {
		return models.Customer{}, errs
	}
	created, err := m.api.Customers.Create(ctx, c)
	if err != nil {
		m.log.Error("adding customer failed", zap.Error(err))
		return models.Customer{}, fmt.Errorf("add customer: %w", err)
	}
	if _, err := m.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Update validates and replaces a customer, then reloads the listing.
func (m *CustomersModule) Update(ctx context.Context, id int, c models.Customer) (models.Customer, error) {
	if errs := validateCustomer(c); len(errs) > 0 {
		return models.Customer{}, errs
	}
	updated, err := m.api.Customers.Update(ctx, id, c)
	if err != nil {
		m.log.Error("updating customer failed", zap.Int("id", id), zap.Error(err))
		return models.Customer{}, fmt.Errorf("update customer %d: %w", id, err)
	}
	if _, err := m.Load(ctx); err != nil {
		return updated, err
	}
	return updated, nil
}

// PurchaseHistory is the read-only purchase history view of one customer.
type PurchaseHistory struct {
	Customer    models.Customer
	Orders      []models.Order
	TotalOrders int
	TotalSpent  float64
}

// History fetches a customer and their orders jointly. Either fetch
// failing aborts the other and surfaces a single error.
func (m *CustomersModule) History(ctx context.Context, id int) (*PurchaseHistory, error) {
	var (
		customer models.Customer
		orders   []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customer, err = m.api.Customers.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = m.api.Customers.Orders(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		m.log.Error("loading purchase history failed", zap.Int("id", id), zap.Error(err))
		return nil, fmt.Errorf("load purchase history for customer %d: %w", id, err)
	}

	spent := decimal.Zero
	for _, o := range orders {
		spent = spent.Add(decimal.NewFromFloat(o.Total))
	}
	total, _ := spent.Float64()

	return &PurchaseHistory{
		Customer:    customer,
		Orders:      orders,
		TotalOrders: len(orders),
		TotalSpent:  total,
	}, nil
}
