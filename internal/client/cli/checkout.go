package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/shopeasy/storefront/internal/client/checkout"
	"github.com/shopeasy/storefront/internal/client/models"
)

// errCancelled signals that the user aborted the wizard. The wizard is
// closed and nothing of it survives.
var errCancelled = fmt.Errorf("checkout cancelled")

// Checkout runs the two-step checkout wizard: shipping form, then payment
// form with a back transition, ending in order placement. The wizard is
// constructed fresh on every invocation, so no data survives a close.
func (a *App) Checkout(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	if a.cart.Len() == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}
	a.pumpEvents()
	if a.busy {
		fmt.Println("Processing, please wait...")
		return nil
	}

	fmt.Println("Checkout (type 'cancel' at any prompt to abort)")

	w := checkout.New()
	for {
		var done bool
		var err error

		switch w.Step() {
		case checkout.StepShipping:
			err = a.shippingStep(w)
		case checkout.StepPayment:
			done, err = a.paymentStep(ctx, w)
		}

		if err == errCancelled {
			fmt.Println("Checkout cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// shippingStep collects the shipping form and advances the wizard. A
// validation failure keeps the wizard at the shipping step. After a back
// transition the previously entered values are offered as defaults.
func (a *App) shippingStep(w *checkout.Wizard) error {
	prev := w.Shipping()
	if prev.Country == "" {
		prev.Country = "United States"
	}

	info := models.ShippingInfo{}
	fields := []struct {
		prompt string
		def    string
		dst    *string
	}{
		{"Full Name", prev.FullName, &info.FullName},
		{"Street Address", prev.Address, &info.Address},
		{"City", prev.City, &info.City},
		{"State", prev.State, &info.State},
		{"ZIP Code", prev.ZipCode, &info.ZipCode},
		{"Country", prev.Country, &info.Country},
	}

	fmt.Println("1. Shipping Information")
	for _, f := range fields {
		var v string
		var err error
		if f.def != "" {
			v, err = getTextWithDefault(a.reader, f.prompt, f.def, os.Stdout)
		} else {
			v, err = getSimpleText(a.reader, f.prompt, os.Stdout)
		}
		if err != nil {
			return err
		}
		if v == "cancel" {
			return errCancelled
		}
		*f.dst = v
	}

	if err := w.SubmitShipping(info); err != nil {
		fmt.Println("All shipping fields are required:", err)
	}
	return nil
}

// paymentStep collects the payment form, shows the order summary, and
// places the order. "back" returns to shipping with its values preserved.
// It reports done=true once an order was successfully placed.
func (a *App) paymentStep(ctx context.Context, w *checkout.Wizard) (bool, error) {
	fmt.Println("2. Payment Information")

	method, err := getTextWithDefault(a.reader, "Payment method (credit_card/paypal/back)", string(models.PaymentMethodCreditCard), os.Stdout)
	if err != nil {
		return false, err
	}
	switch method {
	case "cancel":
		return false, errCancelled
	case "back":
		return false, w.Back()
	}

	info := models.PaymentInfo{PaymentMethod: models.PaymentMethod(method)}
	if info.PaymentMethod == models.PaymentMethodCreditCard {
		prompts := []struct {
			prompt string
			dst    *string
		}{
			{"Cardholder Name", &info.CardName},
			{"Card Number (1234 5678 9012 3456)", &info.CardNumber},
			{"Expiry Date (MM/YY)", &info.ExpiryDate},
			{"CVV", &info.CVV},
		}
		for _, p := range prompts {
			v, err := getSimpleText(a.reader, p.prompt, os.Stdout)
			if err != nil {
				return false, err
			}
			if v == "cancel" {
				return false, errCancelled
			}
			*p.dst = v
		}
	}

	shipping, payment, err := w.SubmitPayment(info)
	if err != nil {
		// Stay at the payment step.
		fmt.Println("Payment details incomplete:", err)
		return false, nil
	}

	a.renderOrderSummary()

	confirm, err := getTextWithDefault(a.reader, fmt.Sprintf("Place Order - $%s? (y/n)", a.cart.Total()), "y", os.Stdout)
	if err != nil {
		return false, err
	}
	switch confirm {
	case "cancel", "n":
		return false, errCancelled
	case "y":
	default:
		return false, nil
	}

	if err := a.placeOrder(ctx, shipping, payment); err != nil {
		// No compensation: a created order whose payment failed stays
		// recorded server-side. The wizard stays open at the payment step.
		log.Printf("order placement failed: %v", err)
		fmt.Println("❌ Order failed. Please try again.")
		return false, nil
	}

	fmt.Println("🎉 Order placed successfully!")
	return true, nil
}

func (a *App) renderOrderSummary() {
	fmt.Println("Order Summary:")
	for _, l := range a.cart.Lines() {
		fmt.Printf("  %s x%d  $%s\n", l.Product.Name, l.Quantity, l.Subtotal().StringFixed(2))
	}
	fmt.Printf("  Total: $%s\n", a.cart.Total())
}

// placeOrder submits the merged payload and, on success, clears the cart.
func (a *App) placeOrder(ctx context.Context, shipping models.ShippingInfo, payment models.PaymentInfo) error {
	a.busy = true
	defer func() { a.busy = false }()

	conf, err := a.orders.Place(ctx, a.user.ID, a.cart.Items(), shipping, payment)
	if err != nil {
		return err
	}

	a.cart.Clear()
	log.Printf("Order #%d placed, total $%s", conf.ID, conf.Total.StringFixed(2))
	return nil
}
