package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mixbook/internal/auth"
	apperrors "mixbook/internal/errors"
	"mixbook/internal/service"
)

// IngredientHandler handles the ingredient shelf pages.
type IngredientHandler struct {
	ingredients service.IngredientService
	drinks      service.DrinkService
	sessions    *auth.Manager
}

// NewIngredientHandler creates a new ingredient handler.
func NewIngredientHandler(ingredients service.IngredientService, drinks service.DrinkService, sessions *auth.Manager) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients, drinks: drinks, sessions: sessions}
}

// AddIngredientRequest represents the add-ingredient form payload.
type AddIngredientRequest struct {
	IngredientName  string `form:"ingredientName" validate:"required,max=255"`
	IngredientImage string `form:"ingredientImage" validate:"omitempty,url"`
}

// SearchRequest represents the shelf filter form payload.
type SearchRequest struct {
	IngredientName string `form:"ingredientName"`
}

// List renders the full shelf.
func (h *IngredientHandler) List(c echo.Context) error {
	ingredients, err := h.ingredients.List(c.Request().Context())
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	return c.Render(http.StatusOK, "ingredients.html", pageData(c, h.sessions, echo.Map{
		"Title":       "Ingredients",
		"Ingredients": ingredients,
		"Query":       "",
	}))
}

// Search filters the shelf by the submitted criteria and also lists the
// drinks, mirroring the original search view.
func (h *IngredientHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}
	return h.renderFiltered(c, req.IngredientName)
}

// FilterByName is the GET variant of Search with the term in the path.
func (h *IngredientHandler) FilterByName(c echo.Context) error {
	return h.renderFiltered(c, c.Param("name"))
}

func (h *IngredientHandler) renderFiltered(c echo.Context, query string) error {
	ctx := c.Request().Context()

	ingredients, err := h.ingredients.Search(ctx, query)
	if err != nil {
		return renderError(c, h.sessions, err)
	}
	drinks, err := h.drinks.List(ctx)
	if err != nil {
		return renderError(c, h.sessions, err)
	}

	return c.Render(http.StatusOK, "ingredients.html", pageData(c, h.sessions, echo.Map{
		"Title":       "Ingredients",
		"Ingredients": ingredients,
		"Drinks":      drinks,
		"Query":       query,
	}))
}

// AddPage renders the add-ingredient form. Login is enforced by the route.
func (h *IngredientHandler) AddPage(c echo.Context) error {
	return c.Render(http.StatusOK, "addingredient.html", pageData(c, h.sessions, echo.Map{
		"Title":           "Add ingredient",
		"IngredientName":  "",
		"IngredientImage": "",
	}))
}

// Add creates an ingredient, re-rendering with the duplicate indicator when
// the normalized name is already taken.
func (h *IngredientHandler) Add(c echo.Context) error {
	var req AddIngredientRequest
	if err := c.Bind(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}
	if err := c.Validate(&req); err != nil {
		return renderError(c, h.sessions, apperrors.ErrInvalidInput)
	}

	_, err := h.ingredients.Create(c.Request().Context(), req.IngredientName, req.IngredientImage)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyExists) {
			return c.Render(http.StatusOK, "addingredient.html", pageData(c, h.sessions, echo.Map{
				"Title":           "Add ingredient",
				"Exists":          true,
				"IngredientName":  req.IngredientName,
				"IngredientImage": req.IngredientImage,
			}))
		}
		return renderError(c, h.sessions, err)
	}

	// The shelf usually grows in service of a new recipe, so continue there.
	return c.Redirect(http.StatusFound, "/drink/insertDrink")
}
