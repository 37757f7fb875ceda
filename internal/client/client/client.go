package client

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
)

type Client interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	ListBooks(ctx context.Context, q models.SearchQuery) (*models.SearchPayload, error)
	GetBook(ctx context.Context, id string) (*models.BookPayload, error)
	GetCart(ctx context.Context) (*models.CartPayload, error)
	AddToCart(ctx context.Context, bookID string, quantity int) error
	UpdateCartQuantity(ctx context.Context, bookID string, quantity int) error
	RemoveFromCart(ctx context.Context, bookID string) error
}
