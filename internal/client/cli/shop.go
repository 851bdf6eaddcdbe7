package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopeasy/storefront/internal/client/models"
)

func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		fmt.Println("Please login first")
		return false
	}
	return true
}

func (a *App) findProduct(id int) (models.Product, bool) {
	for _, p := range a.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Products renders the product grid. When nothing is cached yet and no
// fetch is in flight, the catalog is fetched synchronously first.
func (a *App) Products(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.pumpEvents()
	if a.busy {
		fmt.Println("Loading products...")
		return nil
	}
	if a.products == nil {
		a.products = a.catalog.List(ctx)
	}
	if len(a.products) == 0 {
		fmt.Println("No products available.")
		return nil
	}
	fmt.Println("Featured Products:")
	for _, p := range a.products {
		fmt.Printf("  [%d] %-30s %-12s $%s  (%d in stock)\n",
			p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Stock)
	}
	return nil
}

// Refresh starts a background re-fetch of the catalog.
func (a *App) Refresh(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	a.fetchProductsAsync(ctx)
	return nil
}

// AddToCart puts one unit of the given product id into the cart.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) != 1 {
		fmt.Println("Usage: add <product-id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Usage: add <product-id>")
		return nil
	}
	p, ok := a.findProduct(id)
	if !ok {
		fmt.Printf("Unknown product: %d\n", id)
		return nil
	}
	a.cart.Add(p)
	fmt.Printf("Added %s to cart.\n", p.Name)
	return nil
}

// ShowCart renders the cart lines with per-line subtotals and the total.
func (a *App) ShowCart(ctx context.Context) error {
	if !a.requireLogin() {
		return nil
	}
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty")
		return nil
	}
	fmt.Println("Shopping Cart:")
	for _, l := range lines {
		fmt.Printf("  [%d] %-30s $%s x%d = $%s\n",
			l.Product.ID, l.Product.Name, l.Product.Price.StringFixed(2),
			l.Quantity, l.Subtotal().StringFixed(2))
	}
	fmt.Printf("Total: $%s\n", a.cart.Total())
	return nil
}

// SetQuantity changes a line quantity; 0 removes the line.
func (a *App) SetQuantity(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) != 2 {
		fmt.Println("Usage: qty <product-id> <quantity>")
		return nil
	}
	id, err1 := strconv.Atoi(args[0])
	qty, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || qty < 0 {
		fmt.Println("Usage: qty <product-id> <quantity>")
		return nil
	}
	a.cart.SetQuantity(id, qty)
	return a.ShowCart(ctx)
}

// RemoveFromCart drops a line from the cart.
func (a *App) RemoveFromCart(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) != 1 {
		fmt.Println("Usage: remove <product-id>")
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("Usage: remove <product-id>")
		return nil
	}
	a.cart.Remove(id)
	return a.ShowCart(ctx)
}
