package models

import "github.com/shopspring/decimal"

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodPayPal     PaymentMethod = "paypal"
)

// ShippingInfo holds the shipping form fields. All fields are required
// before the checkout wizard advances past the shipping step.
type ShippingInfo struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country"`
}

// PaymentInfo holds the payment form fields. Card fields are required only
// when the method is credit_card.
type PaymentInfo struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CardName      string        `json:"cardName"`
	CardNumber    string        `json:"cardNumber"`
	ExpiryDate    string        `json:"expiryDate"`
	CVV           string        `json:"cvv"`
}

// OrderItem is a cart line as submitted to the orders endpoint: the full
// product flattened together with the ordered quantity.
type OrderItem struct {
	Product
	Quantity int `json:"quantity"`
}

// OrderRequest is the single payload submitted at the final wizard step.
// Shipping and payment fields are flattened to the top level, matching the
// orders endpoint contract.
type OrderRequest struct {
	UserID int         `json:"userId"`
	Items  []OrderItem `json:"items"`
	ShippingInfo
	PaymentInfo
}

// OrderConfirmation is the orders endpoint success response.
type OrderConfirmation struct {
	ID    int             `json:"id"`
	Total decimal.Decimal `json:"total"`
}
