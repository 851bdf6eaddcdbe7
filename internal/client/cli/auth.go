package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/shopeasy/storefront/internal/client/api"
	"github.com/shopeasy/storefront/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword

// Register prompts for name, email, and password and attempts to create a
// new account via the SessionService.
//
// A successful registration does not log the user in: the user is asked to
// log in with the new credentials. On failure the server-provided message
// (or a generic fallback) is printed.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, name, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Registration successful! Please login.")
	return nil
}

// Login prompts for credentials and tries to authenticate.
//
// On success the session is persisted, the shell switches to the
// authenticated command set, and a background catalog fetch warms the
// product grid. On failure the session stays anonymous and the
// server-provided error message is shown (a generic one when the server
// did not send any).
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, token, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			log.Printf("Server unavailable, please try again later")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successful")
	a.beginSession(ctx, user, token)
	return nil
}

// Logout clears the persisted session and all state attached to it: the
// in-memory user, the cart, and the cached product grid. Any in-flight
// fetch started under the old session id is discarded when it completes.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.user = models.User{}
	a.token = ""
	a.sessionID = ""
	a.cart.Clear()
	a.products = nil
	fmt.Println("Logged out.")
	return nil
}
