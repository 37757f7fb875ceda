package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/bookstore/internal/client/client"
	"github.com/dmitrijs2005/bookstore/internal/client/config"
	"github.com/dmitrijs2005/bookstore/internal/client/credential"
	"github.com/dmitrijs2005/bookstore/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookstore/internal/client/routes"
	"github.com/dmitrijs2005/bookstore/internal/client/services"
	"github.com/dmitrijs2005/bookstore/internal/client/storage"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"go.uber.org/multierr"
)

type App struct {
	config *config.Config
	log    logging.Logger

	closers []io.Closer

	auth    services.AuthService
	catalog services.CatalogService
	cart    services.CartService
	guard   *routes.Guard
	notify  services.Notifier

	reader *bufio.Reader
	out    io.Writer

	mu      sync.Mutex
	current routes.Route
}

// NewApp opens the local database and builds the service graph described by
// c. The caller owns the returned App and must Close it.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	creds := credential.NewPersistent(metadata.NewSQLiteRepository(db))
	api := client.NewHTTPClient(c.APIBaseURL, creds,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log.With("component", "http")),
	)

	a := newApp(c, log, api, creds, bufio.NewReader(os.Stdin), os.Stdout)
	a.closers = append(a.closers, db)
	return a, nil
}

// newApp wires the stores and the guard around an API client.
func newApp(c *config.Config, log logging.Logger, api client.Client, creds credential.Provider, in *bufio.Reader, out io.Writer) *App {
	notify := newTerminalNotifier(out)
	opts := []services.Option{
		services.WithNotifier(notify),
		services.WithLogger(log),
	}
	catalogOpts := append([]services.Option{}, opts...)
	if c.LatestOnly {
		catalogOpts = append(catalogOpts, services.WithLatestOnly())
	}

	auth := services.NewAuthService(api, creds, opts...)

	return &App{
		config:  c,
		log:     log,
		auth:    auth,
		catalog: services.NewCatalogService(api, c.PageSize, catalogOpts...),
		cart:    services.NewCartService(api, opts...),
		guard:   routes.NewGuard(routes.NewRouter(), auth, nil),
		notify:  notify,
		reader:  in,
		out:     out,
	}
}

// Run opens the home view (or the login prompt) and serves commands until
// the input ends or the user quits.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Bookstore CLI (type 'help' for commands)")
	_ = a.Open(ctx, "/")

	runREPL(ctx, a, a.reader)
	return nil
}

// Close releases the local database and anything else the App opened.
func (a *App) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i].Close())
	}
	return err
}

// status is the prompt label: user name and cart size when logged in.
func (a *App) status(ctx context.Context) string {
	if !a.auth.IsAuthenticated(ctx) {
		return "guest"
	}
	name := a.auth.DisplayName(ctx)
	if name == "" {
		name = "signed in"
	}
	return fmt.Sprintf("%s | cart %d", name, a.cart.Summary().Lines)
}

func (a *App) setCurrent(r routes.Route) {
	a.mu.Lock()
	a.current = r
	a.mu.Unlock()
}

func (a *App) currentRoute() routes.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}
