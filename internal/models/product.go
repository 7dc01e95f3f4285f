package models

// Product represents a catalog entry exchanged verbatim with the backend.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku,omitempty"`
}

// Category groups products in the catalog.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
