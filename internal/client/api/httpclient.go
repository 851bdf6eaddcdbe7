package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopeasy/storefront/internal/client/models"
)

func init() {
	// The gateway expects prices and amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// HTTPClient talks JSON to the gateway at baseURL (e.g. "http://host:3000/api").
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

// NewHTTPClient constructs a client for the given base URL. A trailing
// slash on baseURL is tolerated.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &HTTPClient{baseURL: baseURL, hc: &http.Client{Timeout: timeout}}
}

// errorBody is the shape of gateway error responses.
type errorBody struct {
	Error string `json:"error"`
}

// doJSON issues a request and decodes a 2xx response into out (when out is
// non-nil). Transport failures are wrapped in ErrUnavailable; non-2xx
// statuses become a *RequestError carrying the body's "error" field or
// fallbackMsg when absent.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any, fallbackMsg string) error {
	var reqBody *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		msg := eb.Error
		if msg == "" {
			msg = fallbackMsg
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products, "failed to load products"); err != nil {
		return nil, err
	}
	return products, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	req := registerRequest{Name: name, Email: email, Password: password}
	return c.doJSON(ctx, http.MethodPost, "/users/register", req, nil, "Registration failed")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.User, string, error) {
	req := loginRequest{Email: email, Password: password}
	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users/login", req, &resp, "Login failed"); err != nil {
		return models.User{}, "", err
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, req models.OrderRequest) (models.OrderConfirmation, error) {
	var conf models.OrderConfirmation
	if err := c.doJSON(ctx, http.MethodPost, "/orders", req, &conf, "Order failed"); err != nil {
		return models.OrderConfirmation{}, err
	}
	return conf, nil
}

type paymentRequest struct {
	OrderID       int                  `json:"orderId"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
}

func (c *HTTPClient) ProcessPayment(ctx context.Context, orderID int, amount decimal.Decimal, method models.PaymentMethod) error {
	req := paymentRequest{OrderID: orderID, Amount: amount, PaymentMethod: method}
	return c.doJSON(ctx, http.MethodPost, "/payments/process", req, nil, "Payment failed")
}
