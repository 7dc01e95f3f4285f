package backoffice

import (
	"strings"

	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/util"
)

// FieldError describes one client-side validation failure.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError is a set of field errors. When a handler returns one,
// the submission was blocked before any network call was made.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Description
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func validateProduct(p models.Product) ValidationError {
	var errs ValidationError
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, FieldError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, FieldError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}

func validateCustomer(c models.Customer) ValidationError {
	var errs ValidationError
	if !util.ValidEmail(c.Email) {
		errs = append(errs, FieldError{Field: "Email", Description: "Please enter a valid email address"})
	}
	return errs
}
