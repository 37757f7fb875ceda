package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/bookstore/internal/client/client"
	"github.com/dmitrijs2005/bookstore/internal/client/credential"
	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

// AuthService is the session store.
//
// Contract:
//   - Signup / Login validate input before any network call and, on
//     success, persist the credential and remember the user.
//   - A rejected attempt leaves the session untouched and returns
//     *common.AuthError.
//   - Logout clears the session locally and never fails.
//   - IsAuthenticated depends only on credential presence.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	User() *models.User
	Token(ctx context.Context) string
	Loading() bool
	DisplayName(ctx context.Context) string
}

type authService struct {
	client client.Client
	creds  credential.Provider
	notify Notifier
	log    logging.Logger

	mu    sync.RWMutex
	user  *models.User
	token string

	// loggedOut hides the persisted slot until the next session is
	// established, so a failed Clear cannot resurrect the old credential.
	loggedOut bool

	loading gauge
}

// NewAuthService returns a session store. The persisted credential, if any,
// is picked up lazily through creds.
func NewAuthService(c client.Client, creds credential.Provider, opts ...Option) AuthService {
	o := buildOptions(opts)
	return &authService{
		client: c,
		creds:  creds,
		notify: o.notify,
		log:    o.log.With("store", "auth"),
	}
}

func (a *authService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	req := models.SignupRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	done := a.loading.begin()
	defer done()

	resp, err := a.client.Signup(ctx, req)
	if err != nil {
		return nil, a.reject(ctx, err, MsgSignupFailed)
	}
	user, err := a.establish(ctx, resp, MsgSignupFailed)
	if err != nil {
		return nil, err
	}
	a.notify.Success(ctx, MsgSignupOK)
	return user, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	req := models.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	done := a.loading.begin()
	defer done()

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return nil, a.reject(ctx, err, MsgLoginFailed)
	}
	user, err := a.establish(ctx, resp, MsgLoginFailed)
	if err != nil {
		return nil, err
	}
	a.notify.Success(ctx, MsgLoginOK)
	return user, nil
}

// establish stores the credential and user of a successful response.
func (a *authService) establish(ctx context.Context, resp *models.AuthResponse, fallback string) (*models.User, error) {
	if resp == nil || resp.Token == "" {
		return nil, a.reject(ctx, errors.New("response carries no token"), fallback)
	}

	if err := a.creds.Set(ctx, resp.Token); err != nil {
		a.log.Warn(ctx, "credential not persisted", "error", err)
	}

	var user *models.User
	if resp.User != nil {
		u := *resp.User
		user = &u
	}

	a.mu.Lock()
	a.token = resp.Token
	a.user = user
	a.loggedOut = false
	a.mu.Unlock()

	a.log.Info(ctx, "session established", "user", a.DisplayName(ctx))
	return user, nil
}

func (a *authService) reject(ctx context.Context, err error, fallback string) error {
	msg := common.ServerMessage(err, fallback)
	a.notify.Error(ctx, msg)
	a.log.Debug(ctx, "authentication rejected", "error", err)
	return &common.AuthError{Message: msg, Err: err}
}

func (a *authService) Logout(ctx context.Context) {
	a.mu.Lock()
	a.token = ""
	a.user = nil
	a.loggedOut = true
	a.mu.Unlock()

	if err := a.creds.Clear(ctx); err != nil {
		a.log.Warn(ctx, "credential not cleared from storage", "error", err)
	}
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.Token(ctx) != ""
}

func (a *authService) User() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// Token returns the session credential, falling back to the persisted slot
// after a restart. The slot is ignored once the user has logged out.
func (a *authService) Token(ctx context.Context) string {
	a.mu.RLock()
	token, loggedOut := a.token, a.loggedOut
	a.mu.RUnlock()
	if token != "" || loggedOut {
		return token
	}

	token, err := a.creds.Get(ctx)
	if err != nil {
		a.log.Warn(ctx, "credential read failed", "error", err)
		return ""
	}
	return token
}

func (a *authService) Loading() bool { return a.loading.active() }

// DisplayName labels the prompt: the user's name when known, otherwise a
// name decoded from the credential.
func (a *authService) DisplayName(ctx context.Context) string {
	if u := a.User(); u != nil {
		if name := u.DisplayName(); name != "" {
			return name
		}
	}
	return credential.DisplayName(a.Token(ctx))
}
