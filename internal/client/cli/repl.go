package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	pumpEvents()
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	Refresh(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	ShowCart(ctx context.Context) error
	SetQuantity(ctx context.Context, args []string) error
	RemoveFromCart(ctx context.Context, args []string) error
	Checkout(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the storefront shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Before each prompt, queued async completions are applied via pumpEvents,
// so all state mutation happens on this goroutine.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - help           - show available commands
//	  - products | p   - show the product grid
//	  - refresh        - re-fetch the catalog
//	  - add <id>       - add a product to the cart
//	  - cart | c       - show the cart
//	  - qty <id> <n>   - change a line quantity (0 removes)
//	  - remove <id>    - remove a line
//	  - checkout       - start the checkout wizard
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// report their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		a.pumpEvents()
		printlnFn(fmt.Sprintf("shop> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (p)roducts, refresh, add <id>, (c)art, qty <id> <n>, remove <id>, checkout, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "add":
			_ = a.AddToCart(ctx, args)

		case "c", "cart":
			_ = a.ShowCart(ctx)

		case "qty":
			_ = a.SetQuantity(ctx, args)

		case "remove":
			_ = a.RemoveFromCart(ctx, args)

		case "checkout":
			_ = a.Checkout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
