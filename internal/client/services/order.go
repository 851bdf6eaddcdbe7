package services

import (
	"context"
	"fmt"

	"github.com/shopeasy/storefront/internal/client/api"
	"github.com/shopeasy/storefront/internal/client/models"
)

// OrderService places orders: a createOrder call followed by a payment
// call. If the payment fails after the order was recorded, no compensating
// action is taken; the caller gets the error and the order stays recorded
// server-side without payment.
type OrderService interface {
	Place(ctx context.Context, userID int, items []models.OrderItem, shipping models.ShippingInfo, payment models.PaymentInfo) (models.OrderConfirmation, error)
}

type orderService struct {
	client api.Client
}

func NewOrderService(client api.Client) OrderService {
	return &orderService{client: client}
}

func (s *orderService) Place(ctx context.Context, userID int, items []models.OrderItem, shipping models.ShippingInfo, payment models.PaymentInfo) (models.OrderConfirmation, error) {
	req := models.OrderRequest{
		UserID:       userID,
		Items:        items,
		ShippingInfo: shipping,
		PaymentInfo:  payment,
	}

	conf, err := s.client.CreateOrder(ctx, req)
	if err != nil {
		return models.OrderConfirmation{}, fmt.Errorf("create order: %w", err)
	}

	if err := s.client.ProcessPayment(ctx, conf.ID, conf.Total, payment.PaymentMethod); err != nil {
		return models.OrderConfirmation{}, fmt.Errorf("process payment: %w", err)
	}

	return conf, nil
}
