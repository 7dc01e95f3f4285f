// Package state holds the client's in-memory snapshot of the backend
// resources. It is the single source of truth for the feature modules:
// listings are committed wholesale after a reload, consumers re-read the
// snapshot after known mutation points or subscribe to change events.
//
// Reloads are sequenced: every load first obtains a token with Begin and
// commits with it. A commit whose token is not the latest issued for the
// resource is discarded, so the most recently requested load always wins
// even when responses arrive out of order.
package state

import (
	"sync"

	"github.com/retailops/storeadmin/internal/models"
)

// Resource names one backend-managed collection held in the snapshot.
type Resource string

const (
	Products   Resource = "products"
	Categories Resource = "categories"
	Customers  Resource = "customers"
	Orders     Resource = "orders"
	Inventory  Resource = "inventory"
)

// Snapshot is a copy of the most recent full listings.
type Snapshot struct {
	Products   []models.Product
	Categories []models.Category
	Customers  []models.Customer
	Orders     []models.Order
	Inventory  []models.InventoryItem
}

// Store is a snapshot store safe for concurrent readers and writers.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	seq  map[Resource]uint64

	subMu sync.RWMutex
	subs  []func(Resource)
}

// New creates an empty store.
func New() *Store {
	return &Store{seq: make(map[Resource]uint64)}
}

// Begin registers a new load of the given resource and returns its token.
func (s *Store) Begin(r Resource) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[r]++
	return s.seq[r]
}

// current reports whether the token is still the latest issued for the
// resource. Callers must hold the write lock.
func (s *Store) current(r Resource, token uint64) bool {
	return token == s.seq[r]
}

// SetProducts commits a products listing. It reports whether the commit
// was applied; a stale token leaves the snapshot untouched.
func (s *Store) SetProducts(token uint64, list []models.Product) bool {
	s.mu.Lock()
	if !s.current(Products, token) {
		s.mu.Unlock()
		return false
	}
	s.snap.Products = list
	s.mu.Unlock()
	s.notify(Products)
	return true
}

// SetCategories commits a categories listing.
func (s *Store) SetCategories(token uint64, list []models.Category) bool {
	s.mu.Lock()
	if !s.current(Categories, token) {
		s.mu.Unlock()
		return false
	}
	s.snap.Categories = list
	s.mu.Unlock()
	s.notify(Categories)
	return true
}

// SetCustomers commits a customers listing.
func (s *Store) SetCustomers(token uint64, list []models.Customer) bool {
	s.mu.Lock()
	if !s.current(Customers, token) {
		s.mu.Unlock()
		return false
	}
	s.snap.Customers = list
	s.mu.Unlock()
	s.notify(Customers)
	return true
}

// SetOrders commits an orders listing.
func (s *Store) SetOrders(token uint64, list []models.Order) bool {
	s.mu.Lock()
	if !s.current(Orders, token) {
		s.mu.Unlock()
		return false
	}
	s.snap.Orders = list
	s.mu.Unlock()
	s.notify(Orders)
	return true
}

// SetInventory commits an inventory listing.
func (s *Store) SetInventory(token uint64, list []models.InventoryItem) bool {
	s.mu.Lock()
	if !s.current(Inventory, token) {
		s.mu.Unlock()
		return false
	}
	s.snap.Inventory = list
	s.mu.Unlock()
	s.notify(Inventory)
	return true
}

// Products returns a copy of the products listing.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Product(nil), s.snap.Products...)
}

// Categories returns a copy of the categories listing.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.snap.Categories...)
}

// Customers returns a copy of the customers listing.
func (s *Store) Customers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Customer(nil), s.snap.Customers...)
}

// Orders returns a copy of the orders listing.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.snap.Orders...)
}

// Inventory returns a copy of the inventory listing.
func (s *Store) Inventory() []models.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.InventoryItem(nil), s.snap.Inventory...)
}

// Snapshot returns a copy of all listings.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Products:   append([]models.Product(nil), s.snap.Products...),
		Categories: append([]models.Category(nil), s.snap.Categories...),
		Customers:  append([]models.Customer(nil), s.snap.Customers...),
		Orders:     append([]models.Order(nil), s.snap.Orders...),
		Inventory:  append([]models.InventoryItem(nil), s.snap.Inventory...),
	}
}

// Subscribe registers fn to run after every applied commit. Callbacks run
// synchronously on the committing goroutine and may read the store.
func (s *Store) Subscribe(fn func(Resource)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(r Resource) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	for _, fn := range s.subs {
		fn(r)
	}
}
