package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/client/credential"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// maxErrorBody bounds how much of an error response is read for its message.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	creds      credential.Provider
	log        logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout. It applies regardless of option
// order and never mutates a client passed to WithHTTPClient.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient returns a gateway for the API rooted at baseURL, e.g.
// "https://shop.example.com/api".
func NewHTTPClient(baseURL string, creds credential.Provider, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		creds:      creds,
		log:        logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.timeout > 0 && c.httpClient.Timeout != c.timeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ListBooks(ctx context.Context, q models.SearchQuery) (*models.SearchPayload, error) {
	var resp models.SearchPayload
	if err := c.Do(ctx, http.MethodGet, "/books", q.Values(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetBook(ctx context.Context, id string) (*models.BookPayload, error) {
	var resp models.BookPayload
	if err := c.Do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetCart(ctx context.Context) (*models.CartPayload, error) {
	var resp models.CartPayload
	if err := c.Do(ctx, http.MethodGet, "/cart", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) AddToCart(ctx context.Context, bookID string, quantity int) error {
	body := models.CartMutation{BookID: bookID, Quantity: quantity}
	return c.Do(ctx, http.MethodPost, "/cart/add", nil, body, nil)
}

func (c *HTTPClient) UpdateCartQuantity(ctx context.Context, bookID string, quantity int) error {
	body := models.CartMutation{BookID: bookID, Quantity: quantity}
	return c.Do(ctx, http.MethodPut, "/cart/update", nil, body, nil)
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, bookID string) error {
	return c.Do(ctx, http.MethodDelete, "/cart/remove/"+url.PathEscape(bookID), nil, nil, nil)
}

// Do sends one request and decodes a JSON response into out (when non-nil).
// query and body may be nil.
func (c *HTTPClient) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	token, err := c.creds.Get(ctx)
	if err != nil {
		c.log.Warn(ctx, "credential read failed, sending anonymously", "error", err)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &common.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return parseAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &common.NetworkError{Status: resp.StatusCode, Message: "read response", Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &common.NetworkError{Status: resp.StatusCode, Message: "malformed response", Err: err}
	}
	return nil
}

func parseAPIError(resp *http.Response) error {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil && !errors.Is(err, io.EOF) {
		return &common.NetworkError{Status: resp.StatusCode, Err: err}
	}
	return &common.NetworkError{Status: resp.StatusCode, Message: errorMessage(data)}
}

// errorMessage extracts the server supplied message from a JSON error body.
// Bodies without one (empty, HTML, plain text) yield "".
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"message", "error", "error.message"} {
		if r := gjson.GetBytes(body, path); r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}
