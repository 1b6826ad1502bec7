package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"mixbook/internal/auth"
	apperrors "mixbook/internal/errors"
	"mixbook/internal/service"
)

// Reserved values of the /drink/:id path segment.
const (
	drinkParamInsert = "insertDrink"
	drinkParamRandom = "randomDrink"
)

// DrinkHandler handles the home page and all drink views and mutations.
type DrinkHandler struct {
	drinks      service.DrinkService
	ingredients service.IngredientService
	sessions    *auth.Manager
}

// NewDrinkHandler creates a new drink handler.
func NewDrinkHandler(drinks service.DrinkService, ingredients service.IngredientService, sessions *auth.Manager) *DrinkHandler {
	return &DrinkHandler{drinks: drinks, ingredients: ingredients, sessions: sessions}
}

// DrinkRequest represents the add/edit drink form payload. The ingredient
// select posts one value per chosen entry, in selection order.
type DrinkRequest struct {
	DrinkName      string   `form:"drinkName" validate:"required,max=255"`
	DrinkImage     string   `form:"drinkImage" validate:"omitempty,url"`
	IngredientName []string `form:"ingredientName"`
	Instructions   string   `form:"instructions" validate:"required"`
}

func (r DrinkRequest) input() service.DrinkInput {
	return service.DrinkInput{
		Name:         r.DrinkName,
		ImageURL:     r.DrinkImage,
		Ingredients:  r.IngredientName,
		Instructions: r.Instructions,
	}
}

// Home renders the latest-first drink listing with the ingredient picklist.
func (h *DrinkHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()

	drinks, err := h.drinks.ListLatest(ctx)
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	ingredients, err := h.ingredients.List(ctx)
	if err != nil {
		return renderError(c, h.sessions, err)
	}

	return c.Render(http.StatusOK, "home.html", pageData(c, h.sessions, echo.Map{
		"Drinks":      drinks,
		"Ingredients": ingredients,
	}))
}

// Show dispatches GET /drink/:id. A real id views that drink, "randomDrink"
// views a random one, and "insertDrink" renders the add form for logged-in
// users. Anything unparseable is a 404.
func (h *DrinkHandler) Show(c echo.Context) error {
	switch param := c.Param("id"); param {
	case drinkParamRandom:
		drink, err := h.drinks.GetRandom(c.Request().Context())
		if err != nil {
			return renderError(c, h.sessions, err)
		}
		return c.Render(http.StatusOK, "viewdrink.html", pageData(c, h.sessions, echo.Map{
			"Title":  drink.DrinkName,
			"Drink":  drink,
			"Random": true,
		}))

	case drinkParamInsert:
		if _, ok := h.sessions.Identity(c); !ok {
			return c.Redirect(http.StatusFound, "/login")
		}
		ingredients, err := h.ingredients.List(c.Request().Context())
		if err != nil {
			return renderError(c, h.sessions, err)
		}
		return c.Render(http.StatusOK, "adddrink.html", pageData(c, h.sessions, echo.Map{
			"Title":       "Add drink",
			"Ingredients": ingredients,
		}))

	default:
		id, err := uuid.Parse(param)
		if err != nil {
			return renderError(c, h.sessions, apperrors.ErrInvalidID)
		}
		drink, err := h.drinks.Get(c.Request().Context(), id)
		if err != nil {
			return renderError(c, h.sessions, err)
		}
		return c.Render(http.StatusOK, "viewdrink.html", pageData(c, h.sessions, echo.Map{
			"Title": drink.DrinkName,
			"Drink": drink,
		}))
	}
}

// Save dispatches POST /drink/:id. "insertDrink" creates with dedup-by-name
// (an existing name silently lands on the existing record); a real id updates
// that drink, owner only. The owner always comes from the session, never the
// form.
func (h *DrinkHandler) Save(c echo.Context) error {
	username, err := h.sessions.RequireIdentity(c)
	if err != nil {
		return renderError(c, h.sessions, err)
	}

	var req DrinkRequest
	if err := c.Bind(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}

	if param := c.Param("id"); param == drinkParamInsert {
		drink, err := h.drinks.CreateOrGet(c.Request().Context(), req.input(), username)
		if err != nil {
			return renderError(c, h.sessions, err)
		}
		return c.Redirect(http.StatusFound, "/drink/"+drink.ID.String())
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidID)
	}
	drink, err := h.drinks.Update(c.Request().Context(), id, req.input(), username)
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Redirect(http.StatusFound, "/drink/"+drink.ID.String())
}

// EditPage renders the edit form for a drink's creator.
func (h *DrinkHandler) EditPage(c echo.Context) error {
	username, err := h.sessions.RequireIdentity(c)
	if err != nil {
		return renderError(c, h.sessions, err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidID)
	}

	ctx := c.Request().Context()
	drink, err := h.drinks.Get(ctx, id)
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	if drink.CreatedBy != username {
		return renderError(c, h.sessions, apperrors.ErrForbidden)
	}

	ingredients, err := h.ingredients.List(ctx)
	if err != nil {
		return renderError(c, h.sessions, err)
	}

	return c.Render(http.StatusOK, "editdrink.html", pageData(c, h.sessions, echo.Map{
		"Title":       "Edit " + drink.DrinkName,
		"Drink":       drink,
		"Ingredients": ingredients,
	}))
}

// Delete removes a drink; only its creator may. Success lands back on the
// caller's own collection.
func (h *DrinkHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidID)
	}

	// Identity may be absent; the service reports Unauthenticated so the
	// delete contract stays in one place.
	username, _ := h.sessions.Identity(c)
	if err := h.drinks.Delete(c.Request().Context(), id, username); err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Redirect(http.StatusFound, "/collection/my-drinks")
}
