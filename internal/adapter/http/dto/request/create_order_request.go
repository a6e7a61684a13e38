package request

import "strings"

// CreateOrderRequest is the storefront checkout payload.
//
// Field validation (catalog membership, required name/email) lives in the
// use case so the error taxonomy has a single owner; the DTO only trims.
type CreateOrderRequest struct {
	Package       string `json:"package"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

func (r CreateOrderRequest) ResolvePackage() string {
	return strings.TrimSpace(r.Package)
}

func (r CreateOrderRequest) ResolveCustomerName() string {
	return strings.TrimSpace(r.CustomerName)
}

func (r CreateOrderRequest) ResolveCustomerEmail() string {
	return strings.TrimSpace(r.CustomerEmail)
}
