package mockapi

import (
	"strings"

	"github.com/retailops/storeadmin/internal/models"
	"github.com/retailops/storeadmin/internal/util"
)

type fieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p models.Product) []fieldError {
	var errs []fieldError
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, fieldError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, fieldError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, fieldError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	return errs
}

func validateCustomer(c models.Customer) []fieldError {
	var errs []fieldError
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, fieldError{Field: "Name", Description: "Name is required"})
	}
	if !util.ValidEmail(c.Email) {
		errs = append(errs, fieldError{Field: "Email", Description: "Email must be a valid address"})
	}
	return errs
}
