package models

// Address is a postal address attached to customers and orders.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Customer represents a customer record. TotalOrders and TotalSpent are
// server-supplied aggregates and never computed client-side.
type Customer struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone,omitempty"`
	Address     Address `json:"address"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	TotalOrders int     `json:"totalOrders,omitempty"`
	TotalSpent  float64 `json:"totalSpent,omitempty"`
}
