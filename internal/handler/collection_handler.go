package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mixbook/internal/auth"
	apperrors "mixbook/internal/errors"
	"mixbook/internal/service"
)

// myDrinks is the reserved /collection path segment for the caller's own view.
const myDrinks = "my-drinks"

// CollectionHandler handles the collection listing pages.
type CollectionHandler struct {
	drinks      service.DrinkService
	credentials service.CredentialService
	sessions    *auth.Manager
	adminUser   string
}

// NewCollectionHandler creates a new collection handler. adminUser names the
// identity whose "my drinks" view shows the whole cabinet.
func NewCollectionHandler(drinks service.DrinkService, credentials service.CredentialService, sessions *auth.Manager, adminUser string) *CollectionHandler {
	return &CollectionHandler{drinks: drinks, credentials: credentials, sessions: sessions, adminUser: adminUser}
}

// All renders every drink in the cabinet.
func (h *CollectionHandler) All(c echo.Context) error {
	drinks, err := h.drinks.List(c.Request().Context())
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Render(http.StatusOK, "collection.html", pageData(c, h.sessions, echo.Map{
		"Title":  "Collection",
		"Drinks": drinks,
	}))
}

// ByName renders "my-drinks" for the logged-in caller, or a named third
// party's collection. An unknown user, or a third party with zero drinks,
// is a 404; the caller's own empty collection renders as an empty list.
func (h *CollectionHandler) ByName(c echo.Context) error {
	name := c.Param("name")
	if name == myDrinks {
		return h.mine(c)
	}
	return h.theirs(c, name)
}

func (h *CollectionHandler) mine(c echo.Context) error {
	username, ok := h.sessions.Identity(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	ctx := c.Request().Context()
	if username == h.adminUser {
		drinks, err := h.drinks.List(ctx)
		if err != nil {
			return renderError(c, h.sessions, err)
		}
		return c.Render(http.StatusOK, "mycollection.html", pageData(c, h.sessions, echo.Map{
			"Title":      "My drinks",
			"Drinks":     drinks,
			"Everything": true,
		}))
	}

	drinks, err := h.drinks.ListByOwner(ctx, username)
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Render(http.StatusOK, "mycollection.html", pageData(c, h.sessions, echo.Map{
		"Title":  "My drinks",
		"Drinks": drinks,
	}))
}

func (h *CollectionHandler) theirs(c echo.Context, name string) error {
	ctx := c.Request().Context()

	if _, err := h.credentials.Lookup(ctx, name); err != nil {
		return renderError(c, h.sessions, err)
	}

	// "User exists but owns nothing" reads as no collection for a third
	// party; only the caller's own view renders empty.
	if username, _ := h.sessions.Identity(c); username != name {
		count, err := h.drinks.CountByOwner(ctx, name)
		if err != nil {
			return renderError(c, h.sessions, err)
		}
		if count == 0 {
			return renderError(c, h.sessions, apperrors.ErrNotFound)
		}
	}

	drinks, err := h.drinks.ListByOwner(ctx, name)
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Render(http.StatusOK, "collection.html", pageData(c, h.sessions, echo.Map{
		"Title":  name + "'s drinks",
		"Owner":  name,
		"Drinks": drinks,
	}))
}
