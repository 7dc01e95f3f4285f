// Package mockapi is an in-memory implementation of the store-management
// backend. It backs cmd/mockapi for local development and serves as the
// test double for the client packages.
package mockapi

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/models"
)

// DefaultThreshold is the low-stock threshold assigned to new products.
const DefaultThreshold = 10

// productRecord is a product plus the inventory bookkeeping the list
// endpoints derive their views from.
type productRecord struct {
	models.Product
	threshold   int
	lastUpdated string
	movements   []models.StockMovement
}

// Server holds the in-memory dataset and its handlers.
type Server struct {
	mu  sync.Mutex
	log *zap.Logger

	products       []productRecord
	nextProductID  int
	nextMovementID int

	categories     []models.Category
	nextCategoryID int

	customers      []models.Customer
	nextCustomerID int

	orders      []models.Order
	nextOrderID int
}

// NewServer creates an empty backend. A nil logger disables logging.
func NewServer(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:            log,
		nextProductID:  1,
		nextMovementID: 1,
		nextCategoryID: 1,
		nextCustomerID: 1,
		nextOrderID:    1,
	}
}

// Router returns the HTTP handler serving the backend API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", s.listProducts)
	r.Post("/products", s.createProduct)
	r.Get("/products/{id}", s.getProduct)
	r.Put("/products/{id}", s.updateProduct)
	r.Delete("/products/{id}", s.deleteProduct)

	r.Get("/categories", s.listCategories)
	r.Post("/categories", s.createCategory)

	r.Get("/customers", s.listCustomers)
	r.Post("/customers", s.createCustomer)
	r.Get("/customers/{id}", s.getCustomer)
	r.Put("/customers/{id}", s.updateCustomer)
	r.Get("/customers/{id}/orders", s.listCustomerOrders)

	r.Get("/orders", s.listOrders)
	r.Post("/orders", s.createOrder)
	r.Get("/orders/{id}", s.getOrder)
	r.Put("/orders/{id}/status", s.updateOrderStatus)

	r.Get("/inventory", s.listInventory)
	r.Put("/inventory/{id}/stock", s.updateStock)
	r.Get("/inventory/{id}/history", s.stockHistory)

	return r
}

// Clear empties the dataset. Tests use it between cases.
func (s *Server) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.categories = nil
	s.customers = nil
	s.orders = nil
	s.nextProductID = 1
	s.nextMovementID = 1
	s.nextCategoryID = 1
	s.nextCustomerID = 1
	s.nextOrderID = 1
}
