// Package services contains the application services of the SleepCoach
// client. Services validate input locally, call the remote API through
// client.Client and keep the local session in step with the results.
//
// This file defines the authentication service: signup, login, logout,
// profile refresh and session inspection.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sleepcoach/internal/client/client"
	"github.com/dmitrijs2005/sleepcoach/internal/client/flow"
	"github.com/dmitrijs2005/sleepcoach/internal/client/models"
	"github.com/dmitrijs2005/sleepcoach/internal/client/session"
	"github.com/dmitrijs2005/sleepcoach/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Signup / Login: validate credentials locally (no request is sent when
//     they are invalid), call the server, persist the session and return the
//     page to continue on.
//   - Logout: drop the local session.
//   - RefreshProfile: fetch the profile and overwrite the cached copy; nil
//     when the refresh failed.
//
// Errors from the API client are returned unwrapped: their text is what the
// user sees.
//
// AuthService satisfies flow.ProfileSource.
type AuthService interface {
	Signup(ctx context.Context, creds models.Credentials, confirm string) (flow.Route, error)
	Login(ctx context.Context, creds models.Credentials) (flow.Route, error)
	Logout(ctx context.Context) error

	HasToken(ctx context.Context) bool
	CachedProfile(ctx context.Context) (*models.Profile, bool)
	RefreshProfile(ctx context.Context) *models.Profile

	Status(ctx context.Context) Status
	Ping(ctx context.Context) (*models.Health, error)
	Close(ctx context.Context) error
}

// Status is a snapshot of the local session.
type Status struct {
	LoggedIn bool
	Profile  *models.Profile
	Token    session.TokenInfo
	State    flow.State
}

type authService struct {
	client client.Client
	store  *session.Store
	logger logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(c client.Client, store *session.Store, logger logging.Logger) AuthService {
	return &authService{client: c, store: store, logger: logger.With("service", "auth")}
}

// Signup creates the account and stores the returned token (and user, when
// the server sends one). A new account always starts at the welcome page.
func (a *authService) Signup(ctx context.Context, creds models.Credentials, confirm string) (flow.Route, error) {
	if err := creds.ValidateSignup(confirm); err != nil {
		return "", err
	}

	resp, err := a.client.Signup(ctx, creds)
	if err != nil {
		return "", err
	}
	if err := a.store.Save(ctx, resp.Token, resp.User); err != nil {
		return "", fmt.Errorf("signup: %w", err)
	}

	a.logger.Info(ctx, "account created", "nickname", creds.Nickname)
	return flow.RouteWelcome, nil
}

// Login authenticates, stores token and profile, and returns the page the
// user's onboarding state leads to.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (flow.Route, error) {
	if err := creds.ValidateLogin(); err != nil {
		return "", err
	}

	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		return "", err
	}
	if err := a.store.Save(ctx, resp.Token, resp.User); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	profile := resp.User
	if profile == nil {
		profile = a.RefreshProfile(ctx)
	}

	state := flow.Resolve(true, profile)
	a.logger.Info(ctx, "logged in", "nickname", creds.Nickname, "state", state.String())
	return flow.Target(state), nil
}

// Logout removes the token and the cached profile.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *authService) HasToken(ctx context.Context) bool {
	return a.store.HasToken(ctx)
}

func (a *authService) CachedProfile(ctx context.Context) (*models.Profile, bool) {
	return a.store.Load(ctx)
}

func (a *authService) RefreshProfile(ctx context.Context) *models.Profile {
	return refreshProfile(ctx, a.client, a.store, a.logger)
}

// Status reports the local view of the session. It never calls the server.
func (a *authService) Status(ctx context.Context) Status {
	st := Status{LoggedIn: a.store.HasToken(ctx)}
	st.Profile, _ = a.store.Load(ctx)
	st.State = flow.Resolve(st.LoggedIn, st.Profile)
	if st.LoggedIn {
		info, err := a.store.TokenInfo(ctx)
		if err != nil {
			a.logger.Warn(ctx, "reading token failed", "error", err)
		}
		st.Token = info
	}
	return st
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) (*models.Health, error) {
	return a.client.HealthCheck(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// refreshProfile fetches the profile and caches it. Failures are logged and
// reported as nil so callers fall back to the cached copy.
func refreshProfile(ctx context.Context, c client.Client, store *session.Store, logger logging.Logger) *models.Profile {
	details, err := c.GetUserDetails(ctx)
	if err != nil {
		logger.Warn(ctx, "profile refresh failed", "error", err)
		return nil
	}
	if err := store.SaveProfile(ctx, details.User); err != nil {
		logger.Warn(ctx, "caching profile failed", "error", err)
	}
	return details.User
}
