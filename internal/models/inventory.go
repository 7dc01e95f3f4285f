package models

// Stock adjustment reasons accepted by the backend.
const (
	ReasonRestock = "restock"
	ReasonDamage  = "damage"
	ReasonReturn  = "return"
	ReasonOther   = "other"
)

// InventoryItem is the stock level of one product.
type InventoryItem struct {
	ProductID         int    `json:"productId"`
	ProductName       string `json:"productName"`
	Quantity          int    `json:"quantity"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	LastUpdated       string `json:"lastUpdated,omitempty"`
}

// LowStock reports whether the item needs restocking attention. An item
// sitting exactly at its threshold is flagged.
func (i InventoryItem) LowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// StockMovement is one entry of a product's stock history.
type StockMovement struct {
	ID         int    `json:"id"`
	ProductID  int    `json:"productId"`
	Adjustment int    `json:"adjustment"`
	Reason     string `json:"reason,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Timestamp  string `json:"timestamp"`
}
