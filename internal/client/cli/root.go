package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if a.user.Name != "" {
		s = a.user.Name
	}
	if n := a.cart.ItemCount(); n > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("cart:%d", n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to ShopEasy (type 'help' for commands)")

	// Restore a persisted session, if any. Like the grid warm-up after
	// login, a restored session triggers a product fetch right away.
	if user, token, ok := a.session.Restore(ctx); ok {
		a.beginSession(ctx, user, token)
		log.Printf("Welcome back, %s!", user.Name)
	} else {
		fmt.Println("Please login or register to start shopping.")
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
