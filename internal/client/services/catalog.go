package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bookstore/internal/client/client"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

// CatalogService is the catalog store: the current query, the page of
// results it produced and the book opened in the detail view.
//
// Every Search issues exactly one request. Concurrent searches are not
// serialized: the response that completes last is the one held, unless the
// store was built WithLatestOnly.
type CatalogService interface {
	Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error)
	// Reload searches again with the current query.
	Reload(ctx context.Context) (models.SearchResult, error)
	FetchDetail(ctx context.Context, id string) (*models.Book, error)

	Result() models.SearchResult
	Detail() *models.Book
	Loading() bool

	Query() models.SearchQuery
	SetSearch(s string) models.SearchQuery
	SetCategory(c string) models.SearchQuery
	SetAuthor(a string) models.SearchQuery
	SetPage(n int) models.SearchQuery
	ClearFilters() models.SearchQuery
}

type catalogService struct {
	client     client.Client
	notify     Notifier
	log        logging.Logger
	latestOnly bool

	mu     sync.RWMutex
	query  models.SearchQuery
	result models.SearchResult
	detail *models.Book
	seq    uint64

	loading gauge
}

// NewCatalogService returns a catalog store whose queries use pageSize
// results per page.
func NewCatalogService(c client.Client, pageSize int, opts ...Option) CatalogService {
	o := buildOptions(opts)
	return &catalogService{
		client:     c,
		notify:     o.notify,
		log:        o.log.With("store", "catalog"),
		latestOnly: o.latestOnly,
		query:      models.NewSearchQuery(pageSize),
		result:     models.SearchResult{TotalPages: 1},
	}
}

func (s *catalogService) Search(ctx context.Context, q models.SearchQuery) (models.SearchResult, error) {
	if q.Limit < 1 {
		q.Limit = s.Query().Limit
	}
	q = q.WithPage(q.Page)

	s.mu.Lock()
	s.query = q
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	done := s.loading.begin()
	defer done()

	resp, err := s.client.ListBooks(ctx, q)
	if err != nil {
		s.notify.Error(ctx, MsgBooksFailed)
		s.log.Warn(ctx, "search failed", "page", q.Page, "error", err)
		return models.SearchResult{}, err
	}

	result := models.NormalizeSearch(*resp)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestOnly && seq != s.seq {
		s.log.Debug(ctx, "stale search response dropped", "seq", seq, "latest", s.seq)
		return result, nil
	}
	s.result = result
	return result, nil
}

func (s *catalogService) Reload(ctx context.Context) (models.SearchResult, error) {
	return s.Search(ctx, s.Query())
}

// FetchDetail loads one book into the detail slot. A book the server does
// not know yields a nil detail and no error.
func (s *catalogService) FetchDetail(ctx context.Context, id string) (*models.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, common.NewValidationError("id", "book id is required")
	}

	done := s.loading.begin()
	defer done()

	resp, err := s.client.GetBook(ctx, id)
	switch {
	case errors.Is(err, common.ErrNotFound):
		s.setDetail(nil)
		return nil, nil
	case err != nil:
		s.notify.Error(ctx, MsgDetailFailed)
		s.log.Warn(ctx, "book detail failed", "id", id, "error", err)
		return nil, err
	}

	book, ok := models.NormalizeBook(*resp)
	if !ok {
		s.setDetail(nil)
		return nil, nil
	}
	s.setDetail(&book)
	b := book
	return &b, nil
}

func (s *catalogService) setDetail(b *models.Book) {
	s.mu.Lock()
	s.detail = b
	s.mu.Unlock()
}

func (s *catalogService) Result() models.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r := s.result
	r.Books = append([]models.Book(nil), s.result.Books...)
	return r
}

func (s *catalogService) Detail() *models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.detail == nil {
		return nil
	}
	b := *s.detail
	return &b
}

func (s *catalogService) Loading() bool { return s.loading.active() }

func (s *catalogService) Query() models.SearchQuery {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *catalogService) SetSearch(v string) models.SearchQuery {
	return s.updateQuery(func(q models.SearchQuery) models.SearchQuery { return q.WithSearch(v) })
}

func (s *catalogService) SetCategory(v string) models.SearchQuery {
	return s.updateQuery(func(q models.SearchQuery) models.SearchQuery { return q.WithCategory(v) })
}

func (s *catalogService) SetAuthor(v string) models.SearchQuery {
	return s.updateQuery(func(q models.SearchQuery) models.SearchQuery { return q.WithAuthor(v) })
}

func (s *catalogService) SetPage(n int) models.SearchQuery {
	return s.updateQuery(func(q models.SearchQuery) models.SearchQuery { return q.WithPage(n) })
}

func (s *catalogService) ClearFilters() models.SearchQuery {
	return s.updateQuery(models.SearchQuery.Cleared)
}

func (s *catalogService) updateQuery(fn func(models.SearchQuery) models.SearchQuery) models.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = fn(s.query)
	return s.query
}
