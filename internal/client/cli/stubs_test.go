package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopeasy/storefront/internal/client/cart"
	"github.com/shopeasy/storefront/internal/client/models"
)

// stubSession is a scriptable services.SessionService.
type stubSession struct {
	restoreUser  models.User
	restoreToken string
	restoreOK    bool

	loginUser  models.User
	loginToken string
	loginErr   error

	registerErr error
	logoutErr   error

	calls []string
}

func (s *stubSession) Restore(ctx context.Context) (models.User, string, bool) {
	s.calls = append(s.calls, "Restore")
	return s.restoreUser, s.restoreToken, s.restoreOK
}

func (s *stubSession) Login(ctx context.Context, email, password string) (models.User, string, error) {
	s.calls = append(s.calls, "Login")
	return s.loginUser, s.loginToken, s.loginErr
}

func (s *stubSession) Register(ctx context.Context, name, email, password string) error {
	s.calls = append(s.calls, "Register")
	return s.registerErr
}

func (s *stubSession) Logout(ctx context.Context) error {
	s.calls = append(s.calls, "Logout")
	return s.logoutErr
}

// stubCatalog returns scripted products, optionally blocking until released
// so in-flight fetches can be raced against logout.
type stubCatalog struct {
	products []models.Product
	block    chan struct{}
	calls    atomic.Int32
}

func (s *stubCatalog) List(ctx context.Context) []models.Product {
	s.calls.Add(1)
	if s.block != nil {
		<-s.block
	}
	return s.products
}

// stubOrders is a scriptable services.OrderService.
type stubOrders struct {
	conf  models.OrderConfirmation
	err   error
	calls int

	gotUserID   int
	gotItems    []models.OrderItem
	gotShipping models.ShippingInfo
	gotPayment  models.PaymentInfo
}

func (s *stubOrders) Place(ctx context.Context, userID int, items []models.OrderItem, shipping models.ShippingInfo, payment models.PaymentInfo) (models.OrderConfirmation, error) {
	s.calls++
	s.gotUserID = userID
	s.gotItems = items
	s.gotShipping = shipping
	s.gotPayment = payment
	return s.conf, s.err
}

// newTestApp builds an App wired to the given stubs, bypassing NewApp so no
// database or network is touched.
func newTestApp(session *stubSession, catalog *stubCatalog, orders *stubOrders) *App {
	return &App{
		session:     session,
		catalog:     catalog,
		orders:      orders,
		cart:        cart.New(),
		completions: make(chan catalogResult, 8),
		reader:      bufio.NewReader(strings.NewReader("")),
	}
}

// scriptedInput replaces the interactive input seams with a queue of
// answers. Prompts (and defaults offered) are recorded for assertions.
// The returned function restores the seams.
type scriptedInput struct {
	answers  []string
	prompts  []string
	defaults map[string]string
}

func (s *scriptedInput) pop(t *testing.T, prompt string) string {
	t.Helper()
	if len(s.answers) == 0 {
		t.Fatalf("no scripted answer left for prompt %q", prompt)
	}
	v := s.answers[0]
	s.answers = s.answers[1:]
	s.prompts = append(s.prompts, prompt)
	return v
}

func stubInputs(t *testing.T, script *scriptedInput) func() {
	t.Helper()
	if script.defaults == nil {
		script.defaults = map[string]string{}
	}
	origST, origTD, origGP := getSimpleText, getTextWithDefault, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		return script.pop(t, prompt), nil
	}
	getTextWithDefault = func(_ *bufio.Reader, prompt string, def string, _ io.Writer) (string, error) {
		script.defaults[prompt] = def
		v := script.pop(t, prompt)
		if v == "" {
			return def, nil
		}
		return v, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(script.pop(t, "password")), nil
	}
	return func() {
		getSimpleText, getTextWithDefault, getPassword = origST, origTD, origGP
	}
}
