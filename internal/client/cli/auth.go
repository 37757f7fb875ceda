package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/client/routes"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for username, email and password and creates an account.
// On success the home view is opened.
func (a *App) Signup(ctx context.Context) error {
	a.setCurrent(routes.Route{Name: routes.Signup, Path: "/signup"})

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if _, err := a.auth.Signup(ctx, username, email, password); err != nil {
		return a.report(err)
	}
	return a.Open(ctx, "/")
}

// Login prompts for email and password. On success the home view is
// opened; on failure the user stays on the login view.
func (a *App) Login(ctx context.Context) error {
	a.setCurrent(routes.Route{Name: routes.Login, Path: routes.LoginPath})

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if _, err := a.auth.Login(ctx, email, password); err != nil {
		return a.report(err)
	}
	return a.Open(ctx, "/")
}

// Logout forgets the credential. It never contacts the server.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.setCurrent(routes.Route{Name: routes.Login, Path: routes.LoginPath})
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
