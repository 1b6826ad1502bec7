package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mixbook/internal/auth"
	apperrors "mixbook/internal/errors"
	"mixbook/internal/service"
)

// AuthHandler handles the login, registration, and logout flows.
type AuthHandler struct {
	credentials service.CredentialService
	sessions    *auth.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(credentials service.CredentialService, sessions *auth.Manager) *AuthHandler {
	return &AuthHandler{credentials: credentials, sessions: sessions}
}

// LoginRequest represents the login form payload.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterRequest represents the registration form payload.
type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=64"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", pageData(c, h.sessions, echo.Map{"Title": "Log in"}))
}

// Login authenticates and establishes a session, or re-renders the form with
// the invalid-credentials indicator. Bad credentials and unknown users look
// identical.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}

	user, err := h.credentials.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Render(http.StatusOK, "login.html", pageData(c, h.sessions, echo.Map{
				"Title":   "Log in",
				"Invalid": true,
			}))
		}
		return renderError(c, h.sessions, err)
	}

	if err := h.sessions.Login(c, user.Username); err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Redirect(http.StatusFound, "/")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", pageData(c, h.sessions, echo.Map{"Title": "Register"}))
}

// Register creates the user and logs them straight in. A taken username
// re-renders the form with the exists indicator.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}

	user, err := h.credentials.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return c.Render(http.StatusOK, "register.html", pageData(c, h.sessions, echo.Map{
				"Title":  "Register",
				"Exists": true,
			}))
		}
		return renderError(c, h.sessions, err)
	}

	if err := h.sessions.Login(c, user.Username); err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session and goes home. Idempotent for anonymous callers.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c); err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Redirect(http.StatusFound, "/")
}
