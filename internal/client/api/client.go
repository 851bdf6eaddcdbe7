// Package api implements the gateway client for the remote storefront API:
// product catalog, user registration and login, order creation and payment
// processing, all over HTTP JSON.
package api

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront/internal/client/models"
)

// Client is the remote API surface the storefront depends on.
type Client interface {
	// ListProducts fetches the catalog.
	ListProducts(ctx context.Context) ([]models.Product, error)

	// Register creates an account. A successful registration does not log
	// the user in; the caller must call Login separately.
	Register(ctx context.Context, name, email, password string) error

	// Login authenticates and returns the user profile and auth token.
	Login(ctx context.Context, email, password string) (models.User, string, error)

	// CreateOrder submits the merged checkout payload and returns the
	// recorded order.
	CreateOrder(ctx context.Context, req models.OrderRequest) (models.OrderConfirmation, error)

	// ProcessPayment charges the given order. Called after CreateOrder;
	// there is no compensating action if it fails.
	ProcessPayment(ctx context.Context, orderID int, amount decimal.Decimal, method models.PaymentMethod) error
}
