package models

import "time"

// Notification types.
const (
	NotificationWarning = "warning"
	NotificationInfo    = "info"
	NotificationError   = "error"
)

// Notification is created client-side only and is never sent to the
// backend; it lives until the process exits.
type Notification struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Products  []InventoryItem `json:"products,omitempty"`
}
