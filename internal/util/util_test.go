package util

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"Plain address", "a@b.com", true},
		{"With subdomain", "ops@mail.example.co.uk", true},
		{"With plus tag", "alice+store@example.com", true},
		{"Missing at sign", "not-an-email", false},
		{"Missing domain dot", "alice@example", false},
		{"Contains whitespace", "alice smith@example.com", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidEmail(tt.email); got != tt.valid {
				t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.valid)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"Whole dollars", 5, "$5.00"},
		{"Two decimals", 19.99, "$19.99"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Rounds half up", 10.005, "$10.01"},
		{"Zero", 0, "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrency(tt.amount); got != tt.want {
				t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"RFC3339 timestamp", "2024-03-15T10:30:00Z", "Mar 15, 2024"},
		{"Date only", "2024-03-15", "Mar 15, 2024"},
		{"Empty", "", "N/A"},
		{"Unparseable passes through", "yesterday", "yesterday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.in); got != tt.want {
				t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewIDUnique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Errorf("expected distinct IDs, got %q twice", a)
	}
}
