package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/bookstore/internal/client/config"
	"github.com/dmitrijs2005/bookstore/internal/client/credential"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements client.Client with a two-book catalog and a cart.
type fakeAPI struct {
	mu    sync.Mutex
	books []models.BookPayload
	cart  map[string]int
	order []string
	calls int
}

func newFakeAPI() *fakeAPI {
	p := func(f float64) *float64 { return &f }
	return &fakeAPI{
		books: []models.BookPayload{
			{MongoID: "b1", Title: "Dune", Author: "Frank Herbert", Category: "Sci-Fi", Price: p(499)},
			{MongoID: "b2", Title: "Emma", Author: "Jane Austen", Category: "Fiction", Price: p(250)},
		},
		cart: map[string]int{},
	}
}

func (f *fakeAPI) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeAPI) Signup(_ context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	f.hit()
	return &models.AuthResponse{User: &models.User{Username: req.Username}, Token: "tok"}, nil
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.hit()
	if req.Password != "secret1" {
		return nil, &common.NetworkError{Status: http.StatusUnauthorized, Message: "Invalid credentials"}
	}
	return &models.AuthResponse{User: &models.User{Name: "Reader"}, Token: "tok"}, nil
}

func (f *fakeAPI) ListBooks(context.Context, models.SearchQuery) (*models.SearchPayload, error) {
	f.hit()
	return &models.SearchPayload{Books: f.books, TotalPages: 2}, nil
}

func (f *fakeAPI) GetBook(_ context.Context, id string) (*models.BookPayload, error) {
	f.hit()
	for _, b := range f.books {
		if b.Identity() == id {
			return &b, nil
		}
	}
	return nil, &common.NetworkError{Status: http.StatusNotFound}
}

func (f *fakeAPI) GetCart(context.Context) (*models.CartPayload, error) {
	f.hit()
	f.mu.Lock()
	defer f.mu.Unlock()
	var out models.CartPayload
	for _, id := range f.order {
		for _, b := range f.books {
			if b.Identity() == id {
				b := b
				out.Items = append(out.Items, models.CartItemPayload{Book: &b, Quantity: f.cart[id]})
			}
		}
	}
	return &out, nil
}

func (f *fakeAPI) AddToCart(_ context.Context, id string, q int) error {
	f.hit()
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cart[id]; !ok {
		f.order = append(f.order, id)
	}
	f.cart[id] += q
	return nil
}

func (f *fakeAPI) UpdateCartQuantity(_ context.Context, id string, q int) error {
	f.hit()
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cart[id]; !ok {
		return &common.NetworkError{Status: http.StatusNotFound}
	}
	f.cart[id] = q
	return nil
}

func (f *fakeAPI) RemoveFromCart(_ context.Context, id string) error {
	f.hit()
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cart[id]; !ok {
		return &common.NetworkError{Status: http.StatusNotFound, Message: "Item not in cart"}
	}
	delete(f.cart, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func testApp(t *testing.T, token, input string) (*App, *fakeAPI, *bytes.Buffer) {
	t.Helper()
	stubTerminal(t, false)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = "http://test.invalid/api"

	api := newFakeAPI()
	var out bytes.Buffer
	a := newApp(cfg, logging.Nop(), api, credential.NewMemory(token), rdr(input), &out)
	return a, api, &out
}

func TestOpen_AnonymousRedirectsToLogin(t *testing.T) {
	a, _, out := testApp(t, "", "me@x.co\nsecret1\n")

	require.NoError(t, a.Open(context.Background(), "/cart"))

	got := out.String()
	assert.Contains(t, got, loginRequired)
	assert.Contains(t, got, "[ok] Login successful")
	assert.Contains(t, got, "Books, page 1 of 2")
	assert.Contains(t, got, "Dune")
	assert.Contains(t, a.status(context.Background()), "Reader")
}

func TestLogin_ValidationShownWithoutNetwork(t *testing.T) {
	a, api, out := testApp(t, "", "me@x.co\nabc\n")

	err := a.Login(context.Background())

	var ve *common.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, out.String(), "password must be at least 6 characters")
	assert.Zero(t, api.calls)
	assert.Equal(t, "guest", a.status(context.Background()))
}

func TestLogin_RejectedShowsServerMessage(t *testing.T) {
	a, _, out := testApp(t, "", "me@x.co\nwrong-pass\n")

	err := a.Login(context.Background())

	var ae *common.AuthError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, out.String(), "[error] Invalid credentials")
}

func TestCartFlow(t *testing.T) {
	a, _, out := testApp(t, "tok", "")
	ctx := context.Background()

	require.NoError(t, a.Cart(ctx))
	assert.Contains(t, out.String(), "Your cart is empty")

	require.NoError(t, a.Add(ctx, "b1"))
	assert.Contains(t, out.String(), "[ok] Book added to cart")

	out.Reset()
	require.NoError(t, a.Inc(ctx, "b1"))
	got := out.String()
	assert.Contains(t, got, "[ok] Cart updated")
	assert.Contains(t, got, "2 items, total ₹998.00")

	require.NoError(t, a.Qty(ctx, "b1", 0))
	assert.Equal(t, 2, a.cart.Summary().Items)

	out.Reset()
	require.NoError(t, a.Remove(ctx, "b1"))
	assert.Contains(t, out.String(), "Your cart is empty")

	err := a.Remove(ctx, "b1")
	require.Error(t, err)
	assert.Contains(t, out.String(), "[error] Failed to remove item")
}

func TestLogoutThenCartGoesToLogin(t *testing.T) {
	a, api, out := testApp(t, "tok", "")
	ctx := context.Background()
	a.auth.Logout(ctx)
	before := api.calls

	_ = a.Cart(ctx)

	assert.Contains(t, out.String(), loginRequired)
	assert.Equal(t, before, api.calls)

	assert.ErrorIs(t, a.Add(ctx, "b1"), errLoginRequired)
}

func TestBookViews(t *testing.T) {
	a, _, out := testApp(t, "tok", "")
	ctx := context.Background()

	require.NoError(t, a.Book(ctx, "b2"))
	assert.Contains(t, out.String(), "Jane Austen")
	assert.Contains(t, out.String(), "add b2")

	out.Reset()
	require.NoError(t, a.Book(ctx, "nope"))
	assert.Equal(t, "Book not found.\n", out.String())

	out.Reset()
	require.NoError(t, a.Open(ctx, "/no/such/page"))
	assert.Equal(t, notFoundText+"\n", out.String())
}

func TestCatalogNavigation(t *testing.T) {
	a, _, out := testApp(t, "tok", "")
	ctx := context.Background()

	require.NoError(t, a.Category(ctx, "sci-fi"))
	assert.Equal(t, "Sci-Fi", a.catalog.Query().Category)
	assert.Contains(t, out.String(), "category Sci-Fi")

	require.NoError(t, a.Category(ctx, "Poetry"))
	assert.Contains(t, out.String(), `Unknown category "Poetry"`)

	require.NoError(t, a.Next(ctx))
	assert.Equal(t, 2, a.catalog.Query().Page)

	out.Reset()
	require.NoError(t, a.Next(ctx))
	assert.Contains(t, out.String(), "Already on the last page.")

	require.NoError(t, a.Prev(ctx))
	require.NoError(t, a.Prev(ctx))
	assert.Contains(t, out.String(), "Already on the first page.")

	require.NoError(t, a.Search(ctx, "dune"))
	require.NoError(t, a.ClearFilters(ctx))
	assert.Equal(t, models.SearchQuery{Page: 1, Limit: 8}, a.catalog.Query())
}

func TestRun_ScriptedSession(t *testing.T) {
	script := strings.Join([]string{
		"me@x.co", "secret1", // login prompt opened by the guard
		"add b1",
		"cart",
		"logout",
		"exit",
	}, "\n") + "\n"
	a, _, out := testApp(t, "", script)
	captureOutput(t)

	require.NoError(t, a.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "[ok] Login successful")
	assert.Contains(t, got, "[ok] Book added to cart")
	assert.Contains(t, got, "Dune")
	assert.Contains(t, got, "Logged out.")
	assert.False(t, a.auth.IsAuthenticated(context.Background()))
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestClose_CombinesErrors(t *testing.T) {
	var order []string
	a := &App{closers: []io.Closer{
		closerFunc(func() error { order = append(order, "db"); return errors.New("db") }),
		closerFunc(func() error { order = append(order, "other"); return errors.New("other") }),
	}}

	err := a.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db")
	assert.Contains(t, err.Error(), "other")
	assert.Equal(t, []string{"other", "db"}, order)
}
