package domain

import (
	"errors"
	"fmt"
)

var (
	ErrServiceNotReady    = errors.New("service not initialized: data not loaded")
	ErrInvalidProductType = errors.New("product_type must be 'loan' or 'card'")
)

// Lookup names used by NotFoundError.
const (
	LookupProduct  = "product"
	LookupCustomer = "customer"
)

// NotFoundError reports a lookup miss. It is a normal outcome of
// Analyze, not a data error.
type NotFoundError struct {
	Lookup  string
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewProductNotFound(customerID string, productType ProductType) *NotFoundError {
	return &NotFoundError{
		Lookup:  LookupProduct,
		Message: fmt.Sprintf("No %s found for customer %s", productType, customerID),
	}
}

func NewCustomerNotFound(customerID string) *NotFoundError {
	return &NotFoundError{
		Lookup:  LookupCustomer,
		Message: fmt.Sprintf("No customer data found for %s", customerID),
	}
}
