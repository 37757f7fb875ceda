package routes

import (
	"context"

	"github.com/dmitrijs2005/bookstore/internal/client/credential"
)

// Session exposes the in-memory credential of the session store.
type Session interface {
	Token(ctx context.Context) string
}

// Decision is the outcome of a navigation attempt. When Allow is false the
// caller must navigate to Redirect instead.
type Decision struct {
	Allow    bool
	Redirect string
	Route    Route
}

// Guard gates protected routes on credential presence. It performs no
// network calls and cannot fail.
type Guard struct {
	router  *Router
	session Session
	creds   credential.Provider
}

// NewGuard returns a guard that consults the session first and the
// persisted slot second. Either may be nil; pass a nil creds when the
// session already falls back to the slot so that its logout state wins.
func NewGuard(router *Router, session Session, creds credential.Provider) *Guard {
	return &Guard{router: router, session: session, creds: creds}
}

func (g *Guard) Check(ctx context.Context, path string) Decision {
	route := g.router.Resolve(path)
	if !route.Protected || g.hasCredential(ctx) {
		return Decision{Allow: true, Route: route}
	}
	return Decision{Redirect: LoginPath, Route: route}
}

func (g *Guard) hasCredential(ctx context.Context) bool {
	if g.session != nil && g.session.Token(ctx) != "" {
		return true
	}
	if g.creds == nil {
		return false
	}
	token, err := g.creds.Get(ctx)
	return err == nil && token != ""
}
