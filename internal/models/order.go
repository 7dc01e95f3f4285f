package models

// Order statuses known to the backend. The set is open ended; the client
// passes statuses through as plain strings.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order represents an order with its customer snapshot and money breakdown.
type Order struct {
	ID              int         `json:"id"`
	CustomerID      int         `json:"customerId"`
	CustomerName    string      `json:"customerName,omitempty"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	CustomerPhone   string      `json:"customerPhone,omitempty"`
	Date            string      `json:"date"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	Status          string      `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"shipping"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
}
