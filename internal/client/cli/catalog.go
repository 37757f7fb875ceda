package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/client/routes"
	"golang.org/x/sync/errgroup"
)

func (a *App) Books(ctx context.Context) error {
	return a.Open(ctx, "/")
}

func (a *App) Search(ctx context.Context, text string) error {
	a.catalog.SetSearch(text)
	return a.Open(ctx, "/")
}

// Category filters by one of models.Categories; "all" or no argument drops
// the filter.
func (a *App) Category(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "all") {
		a.catalog.SetCategory("")
		return a.Open(ctx, "/")
	}
	for _, c := range models.Categories {
		if strings.EqualFold(c, name) {
			a.catalog.SetCategory(c)
			return a.Open(ctx, "/")
		}
	}
	fmt.Fprintf(a.out, "Unknown category %q. Choose one of: %s\n", name, strings.Join(models.Categories, ", "))
	return nil
}

func (a *App) Author(ctx context.Context, name string) error {
	a.catalog.SetAuthor(name)
	return a.Open(ctx, "/")
}

func (a *App) ClearFilters(ctx context.Context) error {
	a.catalog.ClearFilters()
	return a.Open(ctx, "/")
}

func (a *App) Page(ctx context.Context, n int) error {
	a.catalog.SetPage(n)
	return a.Open(ctx, "/")
}

func (a *App) Next(ctx context.Context) error {
	q := a.catalog.Query()
	if q.Page >= a.catalog.Result().TotalPages {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	return a.Page(ctx, q.Page+1)
}

func (a *App) Prev(ctx context.Context) error {
	q := a.catalog.Query()
	if q.Page <= 1 {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	return a.Page(ctx, q.Page-1)
}

func (a *App) Book(ctx context.Context, id string) error {
	return a.Open(ctx, routes.BookPath(id))
}

// showHome loads the catalog page and the cart badge concurrently, the way
// the home view and the header mount together.
func (a *App) showHome(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		_, err := a.catalog.Reload(ctx)
		return err
	})
	g.Go(func() error {
		_, err := a.cart.FetchCart(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Debug(ctx, "home view loaded with errors", "error", err)
	}

	renderBooks(a.out, a.catalog.Query(), a.catalog.Result())
	return nil
}

func (a *App) showBook(ctx context.Context, id string) error {
	book, err := a.catalog.FetchDetail(ctx, id)
	if err != nil {
		return a.report(err)
	}
	if book == nil {
		fmt.Fprintln(a.out, "Book not found.")
		return nil
	}
	renderBook(a.out, *book)
	return nil
}
