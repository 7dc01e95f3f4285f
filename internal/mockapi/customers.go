package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retailops/storeadmin/internal/models"
)

// withTotals fills the server-supplied aggregates from the order book.
// Callers must hold the lock.
func (s *Server) withTotals(c models.Customer) models.Customer {
	spent := decimal.Zero
	count := 0
	for _, o := range s.orders {
		if o.CustomerID == c.ID {
			count++
			spent = spent.Add(decimal.NewFromFloat(o.Total))
		}
	}
	c.TotalOrders = count
	c.TotalSpent, _ = spent.Float64()
	return c
}

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := make([]models.Customer, len(s.customers))
	for i, c := range s.customers {
		list[i] = s.withTotals(c)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateCustomer(c); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	c.ID = s.nextCustomerID
	s.nextCustomerID++
	c.CreatedAt = time.Now().Format(time.RFC3339)
	s.customers = append(s.customers, c)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			writeJSON(w, http.StatusOK, s.withTotals(c))
			return
		}
	}
	http.Error(w, "customer not found", http.StatusNotFound)
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var c models.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateCustomer(c); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			c.ID = id
			c.CreatedAt = s.customers[i].CreatedAt
			s.customers[i] = c
			writeJSON(w, http.StatusOK, s.withTotals(c))
			return
		}
	}
	http.Error(w, "customer not found", http.StatusNotFound)
}

func (s *Server) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, c := range s.customers {
		if c.ID == id {
			found = true
			break
		}
	}
	if !found {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}

	list := []models.Order{}
	for _, o := range s.orders {
		if o.CustomerID == id {
			list = append(list, o)
		}
	}
	writeJSON(w, http.StatusOK, list)
}
