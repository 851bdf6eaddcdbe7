// Package models defines the storefront data types exchanged with the
// remote API and held in client state.
package models

import "github.com/shopspring/decimal"

// Product is a catalog item. Products are owned by the remote catalog and
// are read-only on the client.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}
