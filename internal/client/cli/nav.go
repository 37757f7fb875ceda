package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/client/routes"
	"github.com/dmitrijs2005/bookstore/internal/common"
)

const (
	notFoundText  = "Sorry, the page you visited does not exist."
	loginRequired = "Please log in to continue."
)

// errLoginRequired is returned by actions attempted without a credential.
var errLoginRequired = errors.New("login required")

// Open navigates to path through the route guard and renders the view.
// A protected path without a credential leads to the login prompt.
func (a *App) Open(ctx context.Context, path string) error {
	d := a.guard.Check(ctx, path)
	if !d.Allow {
		fmt.Fprintln(a.out, loginRequired)
		return a.Open(ctx, d.Redirect)
	}
	a.setCurrent(d.Route)

	switch d.Route.Name {
	case routes.Login:
		return a.Login(ctx)
	case routes.Signup:
		return a.Signup(ctx)
	case routes.Home:
		return a.showHome(ctx)
	case routes.Book:
		return a.showBook(ctx, d.Route.Param("id"))
	case routes.Cart:
		return a.showCart(ctx)
	default:
		fmt.Fprintln(a.out, notFoundText)
		return nil
	}
}

// requireLogin gates actions that belong to protected views.
func (a *App) requireLogin(ctx context.Context) error {
	if d := a.guard.Check(ctx, "/cart"); d.Allow {
		return nil
	}
	fmt.Fprintln(a.out, loginRequired)
	return errLoginRequired
}

// report prints errors the stores do not announce themselves.
func (a *App) report(err error) error {
	if err == nil {
		return nil
	}
	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		for _, field := range sortedFields(ve) {
			fmt.Fprintln(a.out, "  -", ve.Fields[field])
		}
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, err)
	}
	return err
}
