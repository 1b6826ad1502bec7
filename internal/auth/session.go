package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "mixbook/internal/errors"
)

const (
	// CookieName is the session cookie the browser carries between requests.
	CookieName = "mixbook_session"
	// contextKey is where the middleware parks the validated session.
	contextKey = "user"
)

// Session is the request-scoped identity carried by a validated cookie.
type Session struct {
	Username string
	TokenID  string
}

// Manager owns the session contract: login binds an identity to a cookie,
// logout clears it, and handlers read the identity back out of the request
// context. The cookie holds a signed token whose ID must also be live in the
// session store, so a logout on one tab kills the session everywhere.
type Manager struct {
	jwt   *JWTService
	store SessionStoreInterface
}

// NewManager creates a session manager.
func NewManager(jwt *JWTService, store SessionStoreInterface) *Manager {
	return &Manager{jwt: jwt, store: store}
}

// Login establishes a new session for username, overwriting any identity the
// request previously carried.
func (m *Manager) Login(c echo.Context, username string) error {
	tokenID, token, err := m.jwt.GenerateSessionToken(username)
	if err != nil {
		return fmt.Errorf("generate session token: %w", err)
	}
	if err := m.store.Put(c.Request().Context(), tokenID, username, SessionExpiry); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Logout clears the session if one is present; idempotent otherwise.
func (m *Manager) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie.Value != "" {
		if claims, err := m.jwt.ValidateToken(cookie.Value); err == nil {
			if err := m.store.Delete(c.Request().Context(), claims.ID); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Validate checks a raw cookie token against the signature and the session
// store. Any failure, including a store outage, counts as logged out.
func (m *Manager) Validate(ctx context.Context, token string) (*Session, error) {
	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	username, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if username != claims.Username {
		return nil, errors.New("session identity mismatch")
	}
	return &Session{Username: username, TokenID: claims.ID}, nil
}

// Identity returns the current session username, if any.
func (m *Manager) Identity(c echo.Context) (string, bool) {
	sess, ok := c.Get(contextKey).(*Session)
	if !ok || sess.Username == "" {
		return "", false
	}
	return sess.Username, true
}

// RequireIdentity is the authorization gate handlers use before mutations.
func (m *Manager) RequireIdentity(c echo.Context) (string, error) {
	username, ok := m.Identity(c)
	if !ok {
		return "", apperrors.ErrUnauthenticated
	}
	return username, nil
}

// Middleware resolves the session cookie on every request. Anonymous requests
// pass through; handlers that need an identity gate themselves.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  contextKey,
		TokenLookup: "cookie:" + CookieName,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return m.Validate(c.Request().Context(), token)
		},
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			// No cookie, expired token, or a dead session record: proceed
			// anonymously.
			return nil
		},
	})
}

// RequireLogin gates form pages behind a login redirect, matching the
// behavior of the gated views.
func (m *Manager) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.Identity(c); !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
