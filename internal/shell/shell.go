// Package shell is the cross-cutting application shell: section
// navigation, the search box, the notification badge, and the aggregate
// dashboard statistics computed from the state snapshot.
package shell

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/retailops/storeadmin/internal/notify"
	"github.com/retailops/storeadmin/internal/state"
)

// ErrUnknownSection is returned by Navigate for a section that does not
// exist; the active section is left unchanged.
var ErrUnknownSection = errors.New("shell: unknown section")

// Sections in navigation order. Exactly one is active at a time.
var Sections = []string{"dashboard", "products", "customers", "orders", "inventory"}

// Shell is the application shell.
type Shell struct {
	mu     sync.Mutex
	active string
	search string

	store  *state.Store
	center *notify.Center
}

// New creates a shell with the dashboard section active.
func New(store *state.Store, center *notify.Center) *Shell {
	return &Shell{active: Sections[0], store: store, center: center}
}

// Navigate activates the named section and deactivates the previous one.
func (s *Shell) Navigate(section string) error {
	for _, known := range Sections {
		if section == known {
			s.mu.Lock()
			s.active = section
			s.mu.Unlock()
			return nil
		}
	}
	return ErrUnknownSection
}

// Active returns the currently active section.
func (s *Shell) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Search captures a query. No filtering is wired to it; the behavior is
// an intentionally stubbed feature of the dashboard.
func (s *Shell) Search(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = strings.TrimSpace(query)
}

// SearchQuery returns the captured query.
func (s *Shell) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// BadgeCount returns the notification badge value.
func (s *Shell) BadgeCount() int {
	return s.center.Count()
}

// DashboardStats are the aggregate statistics shown on the dashboard.
type DashboardStats struct {
	TotalProducts  int
	TotalCustomers int
	TotalOrders    int
	TotalRevenue   float64
}

// Stats computes the dashboard statistics from the current snapshot.
func (s *Shell) Stats() DashboardStats {
	snap := s.store.Snapshot()

	revenue := decimal.Zero
	for _, o := range snap.Orders {
		revenue = revenue.Add(decimal.NewFromFloat(o.Total))
	}
	total, _ := revenue.Float64()

	return DashboardStats{
		TotalProducts:  len(snap.Products),
		TotalCustomers: len(snap.Customers),
		TotalOrders:    len(snap.Orders),
		TotalRevenue:   total,
	}
}
