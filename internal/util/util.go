// Package util holds the small formatting and validation helpers shared
// by the feature modules.
package util

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the local@domain.tld shape expected by
// the backend. It is deliberately loose beyond that.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

var usd = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders an amount as US dollars with grouping,
// e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return usd.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDate renders a backend timestamp as a short human date,
// e.g. "Jan 2, 2006". Values that cannot be parsed are returned as-is;
// the empty string renders as "N/A".
func FormatDate(s string) string {
	if s == "" {
		return "N/A"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return s
}

// NewID returns a unique identifier for client-side records such as
// notifications.
func NewID() string {
	return uuid.NewString()
}
