package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/models"
)

func (rec *productRecord) inventoryItem() models.InventoryItem {
	return models.InventoryItem{
		ProductID:         rec.ID,
		ProductName:       rec.Name,
		Quantity:          rec.Stock,
		LowStockThreshold: rec.threshold,
		LastUpdated:       rec.lastUpdated,
	}
}

func (s *Server) listInventory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := make([]models.InventoryItem, len(s.products))
	for i := range s.products {
		list[i] = s.products[i].inventoryItem()
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) updateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var adj struct {
		Quantity int    `json:"quantity"`
		Reason   string `json:"reason"`
		Notes    string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&adj); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		rec := &s.products[i]
		if rec.ID != id {
			continue
		}
		if rec.Stock+adj.Quantity < 0 {
			http.Error(w, "quantity cannot be negative", http.StatusConflict)
			return
		}
		rec.Stock += adj.Quantity
		rec.lastUpdated = time.Now().Format(time.RFC3339)
		rec.movements = append(rec.movements, models.StockMovement{
			ID:         s.nextMovementID,
			ProductID:  id,
			Adjustment: adj.Quantity,
			Reason:     adj.Reason,
			Notes:      adj.Notes,
			Timestamp:  rec.lastUpdated,
		})
		s.nextMovementID++

		if rec.Stock <= rec.threshold {
			s.log.Warn("product below threshold",
				zap.Int("id", rec.ID), zap.String("name", rec.Name),
				zap.Int("quantity", rec.Stock), zap.Int("threshold", rec.threshold))
		}
		writeJSON(w, http.StatusOK, rec.inventoryItem())
		return
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

func (s *Server) stockHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			writeJSON(w, http.StatusOK, append([]models.StockMovement{}, s.products[i].movements...))
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

// SetThreshold overrides a product's low-stock threshold. Seeding and
// tests use it; there is no HTTP endpoint for thresholds.
func (s *Server) SetThreshold(productID, threshold int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == productID {
			s.products[i].threshold = threshold
			return
		}
	}
}
