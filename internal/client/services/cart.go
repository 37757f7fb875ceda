package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bookstore/internal/client/client"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

// CartService is the cart store. The server owns the cart: every mutation
// is followed by a full refetch and local quantities are never edited in
// place.
type CartService interface {
	FetchCart(ctx context.Context) ([]models.CartLine, error)
	AddToCart(ctx context.Context, bookID string) error
	UpdateQuantity(ctx context.Context, bookID string, quantity int) error
	RemoveFromCart(ctx context.Context, bookID string) error
	Increase(ctx context.Context, bookID string) error
	Decrease(ctx context.Context, bookID string) error

	Lines() []models.CartLine
	Summary() models.CartSummary
	Loading() bool
}

type cartService struct {
	client client.Client
	notify Notifier
	log    logging.Logger

	mu    sync.RWMutex
	lines []models.CartLine

	loading gauge
}

func NewCartService(c client.Client, opts ...Option) CartService {
	o := buildOptions(opts)
	return &cartService{
		client: c,
		notify: o.notify,
		log:    o.log.With("store", "cart"),
	}
}

// FetchCart replaces the snapshot with the server's cart. On failure the
// previous snapshot is kept.
func (s *cartService) FetchCart(ctx context.Context) ([]models.CartLine, error) {
	done := s.loading.begin()
	defer done()

	resp, err := s.client.GetCart(ctx)
	if err != nil {
		s.log.Warn(ctx, "cart fetch failed", "error", err)
		return nil, err
	}

	lines := models.NormalizeCart(*resp)

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()

	return append([]models.CartLine(nil), lines...), nil
}

func (s *cartService) AddToCart(ctx context.Context, bookID string) error {
	bookID, err := requireBookID(bookID)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "add", bookID, MsgAddOK, MsgAddFailed, func() error {
		return s.client.AddToCart(ctx, bookID, 1)
	})
}

// UpdateQuantity sets the quantity of a line. Quantities below one are
// ignored without a request.
func (s *cartService) UpdateQuantity(ctx context.Context, bookID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	bookID, err := requireBookID(bookID)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "update", bookID, MsgUpdateOK, MsgUpdateFailed, func() error {
		return s.client.UpdateCartQuantity(ctx, bookID, quantity)
	})
}

func (s *cartService) RemoveFromCart(ctx context.Context, bookID string) error {
	bookID, err := requireBookID(bookID)
	if err != nil {
		return err
	}
	return s.mutate(ctx, "remove", bookID, MsgRemoveOK, MsgRemoveFailed, func() error {
		return s.client.RemoveFromCart(ctx, bookID)
	})
}

// Increase asks for one more copy than the snapshot holds.
func (s *cartService) Increase(ctx context.Context, bookID string) error {
	line, err := s.line(bookID)
	if err != nil {
		return err
	}
	return s.UpdateQuantity(ctx, line.BookID(), line.Quantity+1)
}

// Decrease asks for one copy less; it never drops a line below one.
func (s *cartService) Decrease(ctx context.Context, bookID string) error {
	line, err := s.line(bookID)
	if err != nil {
		return err
	}
	return s.UpdateQuantity(ctx, line.BookID(), line.Quantity-1)
}

// mutate runs one cart mutation and resynchronizes with the server whether
// or not the mutation succeeded.
func (s *cartService) mutate(ctx context.Context, op, bookID, okMsg, failMsg string, call func() error) error {
	done := s.loading.begin()
	err := call()
	done()

	_, syncErr := s.FetchCart(ctx)

	if err != nil {
		s.notify.Error(ctx, failMsg)
		s.log.Warn(ctx, "cart mutation failed", "op", op, "book_id", bookID, "error", err)
		return err
	}
	s.notify.Success(ctx, okMsg)
	if syncErr != nil {
		return fmt.Errorf("resync cart after %s: %w", op, syncErr)
	}
	return nil
}

func (s *cartService) line(bookID string) (models.CartLine, error) {
	bookID, err := requireBookID(bookID)
	if err != nil {
		return models.CartLine{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.lines {
		if l.BookID() == bookID {
			return l, nil
		}
	}
	return models.CartLine{}, fmt.Errorf("book %s is not in the cart: %w", bookID, common.ErrNotFound)
}

func (s *cartService) Lines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartLine(nil), s.lines...)
}

func (s *cartService) Summary() models.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Summarize(s.lines)
}

func (s *cartService) Loading() bool { return s.loading.active() }

func requireBookID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", common.NewValidationError("bookId", "book id is required")
	}
	return id, nil
}
