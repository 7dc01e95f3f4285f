package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/models"
)

// Flat shipping fee and tax rate applied to every order.
var (
	shippingFee = decimal.NewFromFloat(5.00)
	taxRate     = decimal.NewFromFloat(0.08)
)

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append([]models.Order(nil), s.orders...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var o models.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if len(o.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, []fieldError{{Field: "Items", Description: "Order must have at least one item"}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var customer *models.Customer
	for i := range s.customers {
		if s.customers[i].ID == o.CustomerID {
			customer = &s.customers[i]
			break
		}
	}
	if customer == nil {
		http.Error(w, "customer not found", http.StatusNotFound)
		return
	}

	subtotal := decimal.Zero
	for _, item := range o.Items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(shippingFee).Add(tax)

	o.ID = s.nextOrderID
	s.nextOrderID++
	o.CustomerName = customer.Name
	o.CustomerEmail = customer.Email
	o.CustomerPhone = customer.Phone
	o.Date = time.Now().Format(time.RFC3339)
	o.Status = models.OrderPending
	o.Subtotal, _ = subtotal.Float64()
	o.Shipping, _ = shippingFee.Float64()
	o.Tax, _ = tax.Float64()
	o.Total, _ = total.Float64()

	s.orders = append(s.orders, o)
	s.log.Info("order created", zap.Int("id", o.ID), zap.Int("customerId", o.CustomerID))
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			writeJSON(w, http.StatusOK, o)
			return
		}
	}
	http.Error(w, "order not found", http.StatusNotFound)
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var upd struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if upd.Status == "" {
		writeJSON(w, http.StatusBadRequest, []fieldError{{Field: "Status", Description: "Status is required"}})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = upd.Status
			if upd.Notes != "" {
				s.orders[i].Notes = upd.Notes
			}
			writeJSON(w, http.StatusOK, s.orders[i])
			return
		}
	}
	http.Error(w, "order not found", http.StatusNotFound)
}
