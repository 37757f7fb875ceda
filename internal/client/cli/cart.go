package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/client/routes"
	"github.com/dmitrijs2005/bookstore/internal/client/services"
)

func (a *App) Cart(ctx context.Context) error {
	return a.Open(ctx, "/cart")
}

func (a *App) Add(ctx context.Context, id string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	return a.afterCartChange(a.cart.AddToCart(ctx, id))
}

func (a *App) Inc(ctx context.Context, id string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	return a.afterCartChange(a.cart.Increase(ctx, id))
}

func (a *App) Dec(ctx context.Context, id string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	return a.afterCartChange(a.cart.Decrease(ctx, id))
}

// Qty sets a quantity; values below one are ignored.
func (a *App) Qty(ctx context.Context, id string, n int) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	if n < 1 {
		fmt.Fprintln(a.out, "Quantity must be at least 1; use remove to drop a line.")
		return nil
	}
	return a.afterCartChange(a.cart.UpdateQuantity(ctx, id, n))
}

func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	return a.afterCartChange(a.cart.RemoveFromCart(ctx, id))
}

// afterCartChange redraws the cart when it is the current view. The store
// has already resynchronized with the server.
func (a *App) afterCartChange(err error) error {
	if a.currentRoute().Name == routes.Cart {
		renderCart(a.out, a.cart.Lines(), a.cart.Summary())
	}
	return a.report(err)
}

func (a *App) showCart(ctx context.Context) error {
	if _, err := a.cart.FetchCart(ctx); err != nil {
		a.notify.Error(ctx, services.MsgCartLoadFailed)
		return err
	}
	renderCart(a.out, a.cart.Lines(), a.cart.Summary())
	return nil
}
