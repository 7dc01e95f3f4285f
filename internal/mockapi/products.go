package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/retailops/storeadmin/internal/models"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := make([]models.Product, len(s.products))
	for i, rec := range s.products {
		list[i] = rec.Product
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateProduct(p); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, productRecord{
		Product:     p,
		threshold:   DefaultThreshold,
		lastUpdated: time.Now().Format(time.RFC3339),
	})
	s.mu.Unlock()

	s.log.Info("product created", zap.Int("id", p.ID), zap.String("name", p.Name))
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.products {
		if rec.ID == id {
			writeJSON(w, http.StatusOK, rec.Product)
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var p models.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateProduct(p); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p.ID = id
			s.products[i].Product = p
			s.products[i].lastUpdated = time.Now().Format(time.RFC3339)
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "product not found", http.StatusNotFound)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := append([]models.Category(nil), s.categories...)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if c.Name == "" {
		writeJSON(w, http.StatusBadRequest, []fieldError{{Field: "Name", Description: "Name is required"}})
		return
	}

	s.mu.Lock()
	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories = append(s.categories, c)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, c)
}
