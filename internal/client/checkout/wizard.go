// Package checkout implements the two-step checkout wizard: a linear state
// machine that collects shipping then payment data and produces a single
// order payload.
package checkout

import (
	"errors"
	"fmt"

	"github.com/shopeasy/storefront/internal/client/models"
)

var (
	ErrRequiredField = errors.New("required field is empty")
	ErrWrongStep     = errors.New("operation not valid in current step")
)

// Step names the current wizard stage, for rendering.
type Step string

const (
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
)

// state is the tagged variant behind the wizard. The payment state carries
// the completed shipping data, so a wizard can only be in the payment step
// with valid shipping info already collected.
type state interface{ isState() }

type shippingState struct{}

type paymentState struct {
	shipping models.ShippingInfo
}

func (shippingState) isState() {}
func (paymentState) isState()  {}

// Wizard is the checkout state machine. It starts at the shipping step and
// holds no data from previous checkout attempts: closing and reopening the
// wizard means constructing a new one.
type Wizard struct {
	state state

	// lastShipping keeps submitted shipping values across a Back
	// transition. It never survives wizard construction, so a reopened
	// wizard starts empty.
	lastShipping models.ShippingInfo
}

// New returns a wizard at the shipping step.
func New() *Wizard {
	return &Wizard{state: shippingState{}}
}

// Step reports the current stage.
func (w *Wizard) Step() Step {
	if _, ok := w.state.(paymentState); ok {
		return StepPayment
	}
	return StepShipping
}

// Shipping returns the shipping info collected so far. At the shipping step
// (before anything was submitted) it is the zero value; after a back
// transition the previously submitted values are preserved and returned so
// the form can be pre-filled.
func (w *Wizard) Shipping() models.ShippingInfo {
	if s, ok := w.state.(paymentState); ok {
		return s.shipping
	}
	return w.lastShipping
}

// SubmitShipping validates the shipping form and advances to the payment
// step. All six fields are required; a missing field keeps the wizard at
// the shipping step.
func (w *Wizard) SubmitShipping(info models.ShippingInfo) error {
	if _, ok := w.state.(shippingState); !ok {
		return ErrWrongStep
	}
	fields := []struct{ name, value string }{
		{"full name", info.FullName},
		{"address", info.Address},
		{"city", info.City},
		{"state", info.State},
		{"zip code", info.ZipCode},
		{"country", info.Country},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s: %w", f.name, ErrRequiredField)
		}
	}
	w.state = paymentState{shipping: info}
	w.lastShipping = info
	return nil
}

// Back returns from the payment step to the shipping step, preserving the
// previously entered shipping values.
func (w *Wizard) Back() error {
	if _, ok := w.state.(paymentState); !ok {
		return ErrWrongStep
	}
	w.state = shippingState{}
	return nil
}

// SubmitPayment validates the payment form and produces the merged order
// payload fields. Card fields are required only for the credit_card method.
// On validation failure the wizard stays at the payment step.
func (w *Wizard) SubmitPayment(info models.PaymentInfo) (models.ShippingInfo, models.PaymentInfo, error) {
	s, ok := w.state.(paymentState)
	if !ok {
		return models.ShippingInfo{}, models.PaymentInfo{}, ErrWrongStep
	}
	switch info.PaymentMethod {
	case models.PaymentMethodCreditCard:
		fields := []struct{ name, value string }{
			{"cardholder name", info.CardName},
			{"card number", info.CardNumber},
			{"expiry date", info.ExpiryDate},
			{"cvv", info.CVV},
		}
		for _, f := range fields {
			if f.value == "" {
				return models.ShippingInfo{}, models.PaymentInfo{}, fmt.Errorf("%s: %w", f.name, ErrRequiredField)
			}
		}
	case models.PaymentMethodPayPal:
		// no card fields required
	default:
		return models.ShippingInfo{}, models.PaymentInfo{}, fmt.Errorf("payment method %q: %w", info.PaymentMethod, ErrRequiredField)
	}
	return s.shipping, info, nil
}
