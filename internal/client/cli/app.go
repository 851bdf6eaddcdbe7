// Package cli implements the interactive storefront shell: product
// browsing, cart management, checkout, and session handling. It is the
// single owner of all mutable client state; command handlers run one at a
// time on the shell goroutine and child views only ever see snapshots.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/shopeasy/storefront/internal/client/api"
	"github.com/shopeasy/storefront/internal/client/cart"
	"github.com/shopeasy/storefront/internal/client/config"
	"github.com/shopeasy/storefront/internal/client/models"
	"github.com/shopeasy/storefront/internal/client/services"
	"github.com/shopeasy/storefront/internal/client/storage"
	"github.com/shopeasy/storefront/internal/logging"

	_ "modernc.org/sqlite"
)

// catalogResult is an async product-fetch completion. It carries the
// session id the fetch started under so results for a session that has
// since ended are discarded instead of mutating state.
type catalogResult struct {
	sessionID string
	products  []models.Product
}

type App struct {
	config  *config.Config
	session services.SessionService
	catalog services.CatalogService
	orders  services.OrderService

	cart     *cart.Cart
	products []models.Product

	// Session snapshot. sessionID is a fresh uuid per login/restore and
	// empty while anonymous.
	user      models.User
	token     string
	sessionID string

	// busy suppresses duplicate submissions while a fetch or an order
	// placement is in flight.
	busy bool

	completions chan catalogResult
	reader      *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)

	return &App{
		config:      c,
		session:     services.NewSessionService(apiClient, db),
		catalog:     services.NewCatalogService(apiClient, logger),
		orders:      services.NewOrderService(apiClient),
		cart:        cart.New(),
		completions: make(chan catalogResult, 8),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessionID != ""
}

// beginSession installs a freshly authenticated (or restored) session and
// warms the product grid.
func (a *App) beginSession(ctx context.Context, user models.User, token string) {
	a.user = user
	a.token = token
	a.sessionID = uuid.NewString()
	a.fetchProductsAsync(ctx)
}

// fetchProductsAsync starts a background catalog fetch for the current
// session. The result is applied by pumpEvents on the shell goroutine.
func (a *App) fetchProductsAsync(ctx context.Context) {
	if a.busy {
		return
	}
	a.busy = true
	sid := a.sessionID
	go func() {
		products := a.catalog.List(ctx)
		a.completions <- catalogResult{sessionID: sid, products: products}
	}()
}

// pumpEvents applies queued async completions. A completion whose session
// id no longer matches the active session is dropped; in-flight requests
// are never cancelled, their results just stop mattering.
func (a *App) pumpEvents() {
	for {
		select {
		case res := <-a.completions:
			a.busy = false
			if res.sessionID != a.sessionID {
				continue
			}
			a.products = res.products
		default:
			return
		}
	}
}
