package backoffice

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/retailops/storeadmin/internal/api"
	"github.com/retailops/storeadmin/internal/mockapi"
	"github.com/retailops/storeadmin/internal/notify"
	"github.com/retailops/storeadmin/internal/state"
)

// env wires every module against an in-memory backend for one test.
type env struct {
	backend  *mockapi.Server
	store    *state.Store
	center   *notify.Center
	requests *atomic.Int64

	products  *ProductsModule
	customers *CustomersModule
	orders    *OrdersModule
	inventory *InventoryModule
}

func newEnv(t *testing.T) *env {
	t.Helper()

	backend := mockapi.NewServer(nil)
	requests := &atomic.Int64{}
	handler := backend.Router()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := api.NewClient(api.Config{BaseURL: srv.URL}, nil)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	store := state.New()
	center := notify.NewCenter(50*time.Millisecond, nil)

	return &env{
		backend:   backend,
		store:     store,
		center:    center,
		requests:  requests,
		products:  NewProductsModule(client, store, nil),
		customers: NewCustomersModule(client, store, nil),
		orders:    NewOrdersModule(client, store, nil),
		inventory: NewInventoryModule(client, store, center, nil),
	}
}
