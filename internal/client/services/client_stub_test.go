package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront/internal/client/models"
)

// stubClient is a scriptable api.Client used across the service tests.
// It records the order of calls so two-call sequences can be asserted.
type stubClient struct {
	products    []models.Product
	productsErr error

	registerErr error

	loginUser  models.User
	loginToken string
	loginErr   error

	createConf models.OrderConfirmation
	createErr  error
	payErr     error

	calls []string
}

func (s *stubClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.calls = append(s.calls, "ListProducts")
	return s.products, s.productsErr
}

func (s *stubClient) Register(ctx context.Context, name, email, password string) error {
	s.calls = append(s.calls, "Register")
	return s.registerErr
}

func (s *stubClient) Login(ctx context.Context, email, password string) (models.User, string, error) {
	s.calls = append(s.calls, "Login")
	return s.loginUser, s.loginToken, s.loginErr
}

func (s *stubClient) CreateOrder(ctx context.Context, req models.OrderRequest) (models.OrderConfirmation, error) {
	s.calls = append(s.calls, "CreateOrder")
	return s.createConf, s.createErr
}

func (s *stubClient) ProcessPayment(ctx context.Context, orderID int, amount decimal.Decimal, method models.PaymentMethod) error {
	s.calls = append(s.calls, "ProcessPayment")
	return s.payErr
}
