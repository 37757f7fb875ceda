package services

import (
	"context"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/common"
)

// fakeClient implements client.Client over an in-memory catalog and cart.
// Hook fields, when set, replace the default behavior of one call.
type fakeClient struct {
	mu sync.Mutex

	books map[string]models.BookPayload
	cart  []models.CartItemPayload

	SignupFn    func(req models.SignupRequest) (*models.AuthResponse, error)
	LoginFn     func(req models.LoginRequest) (*models.AuthResponse, error)
	ListBooksFn func(ctx context.Context, q models.SearchQuery) (*models.SearchPayload, error)
	GetCartErr  error
	AddErr      error
	UpdateErr   error

	calls map[string]int
	last  struct {
		query    models.SearchQuery
		bookID   string
		quantity int
	}
}

func newFakeClient(books ...models.BookPayload) *fakeClient {
	f := &fakeClient{books: map[string]models.BookPayload{}, calls: map[string]int{}}
	for _, b := range books {
		f.books[b.Identity()] = b
	}
	return f
}

func (f *fakeClient) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeClient) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) hit(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeClient) Signup(_ context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	f.hit("signup")
	if f.SignupFn != nil {
		return f.SignupFn(req)
	}
	return &models.AuthResponse{User: &models.User{Username: req.Username, Email: req.Email}, Token: "signup-token"}, nil
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.hit("login")
	if f.LoginFn != nil {
		return f.LoginFn(req)
	}
	return &models.AuthResponse{User: &models.User{Name: "Reader", Email: req.Email}, Token: "login-token"}, nil
}

func (f *fakeClient) ListBooks(ctx context.Context, q models.SearchQuery) (*models.SearchPayload, error) {
	f.hit("list")
	f.mu.Lock()
	f.last.query = q
	f.mu.Unlock()
	if f.ListBooksFn != nil {
		return f.ListBooksFn(ctx, q)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	out := &models.SearchPayload{TotalPages: 1}
	for _, b := range f.books {
		out.Books = append(out.Books, b)
	}
	return out, nil
}

func (f *fakeClient) GetBook(_ context.Context, id string) (*models.BookPayload, error) {
	f.hit("get")
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return nil, &common.NetworkError{Status: http.StatusNotFound, Message: "Book not found"}
	}
	return &b, nil
}

func (f *fakeClient) GetCart(context.Context) (*models.CartPayload, error) {
	f.hit("cart")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetCartErr != nil {
		return nil, f.GetCartErr
	}
	return &models.CartPayload{Items: append([]models.CartItemPayload(nil), f.cart...)}, nil
}

func (f *fakeClient) AddToCart(_ context.Context, bookID string, quantity int) error {
	f.hit("add")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last.bookID, f.last.quantity = bookID, quantity
	if f.AddErr != nil {
		return f.AddErr
	}
	for i := range f.cart {
		if f.cart[i].Book.Identity() == bookID {
			f.cart[i].Quantity += quantity
			return nil
		}
	}
	b, ok := f.books[bookID]
	if !ok {
		return &common.NetworkError{Status: http.StatusNotFound, Message: "Book not found"}
	}
	f.cart = append(f.cart, models.CartItemPayload{Book: &b, Quantity: quantity})
	return nil
}

func (f *fakeClient) UpdateCartQuantity(_ context.Context, bookID string, quantity int) error {
	f.hit("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last.bookID, f.last.quantity = bookID, quantity
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	for i := range f.cart {
		if f.cart[i].Book.Identity() == bookID {
			f.cart[i].Quantity = quantity
			return nil
		}
	}
	return &common.NetworkError{Status: http.StatusNotFound, Message: "Item not in cart"}
}

func (f *fakeClient) RemoveFromCart(_ context.Context, bookID string) error {
	f.hit("remove")
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.cart {
		if f.cart[i].Book.Identity() == bookID {
			f.cart = append(f.cart[:i], f.cart[i+1:]...)
			return nil
		}
	}
	return &common.NetworkError{Status: http.StatusNotFound, Message: "Item not in cart"}
}

// recordingNotifier collects notifications in order.
type recordingNotifier struct {
	mu      sync.Mutex
	success []string
	errors  []string
}

func (r *recordingNotifier) Success(_ context.Context, msg string) {
	r.mu.Lock()
	r.success = append(r.success, msg)
	r.mu.Unlock()
}

func (r *recordingNotifier) Error(_ context.Context, msg string) {
	r.mu.Lock()
	r.errors = append(r.errors, msg)
	r.mu.Unlock()
}

func price(f float64) *float64 { return &f }
