// Package credential owns the single persisted credential slot. Every
// component that needs the bearer token (gateway client, auth service,
// route guard) receives a Provider instead of touching storage directly.
package credential

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/bookstore/internal/client/repositories/metadata"
)

// TokenKey is the metadata key of the credential slot.
const TokenKey = "token"

// Provider reads and mutates the credential slot. Get returns "" when no
// credential is stored.
type Provider interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Memory keeps the credential in process memory only.
type Memory struct {
	mu    sync.RWMutex
	token string
}

func NewMemory(token string) *Memory {
	return &Memory{token: token}
}

func (m *Memory) Get(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

func (m *Memory) Set(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}

// Persistent stores the credential in the metadata repository so that it
// survives a restart.
type Persistent struct {
	repo metadata.Repository
}

func NewPersistent(repo metadata.Repository) *Persistent {
	return &Persistent{repo: repo}
}

func (p *Persistent) Get(ctx context.Context) (string, error) {
	v, _, err := p.repo.Get(ctx, TokenKey)
	return v, err
}

func (p *Persistent) Set(ctx context.Context, token string) error {
	if token == "" {
		return p.Clear(ctx)
	}
	return p.repo.Set(ctx, TokenKey, token)
}

func (p *Persistent) Clear(ctx context.Context) error {
	return p.repo.Delete(ctx, TokenKey)
}
