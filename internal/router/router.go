package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mixbook/internal/auth"
	"mixbook/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	sessions *auth.Manager,
	authHandler *handler.AuthHandler,
	ingredientHandler *handler.IngredientHandler,
	drinkHandler *handler.DrinkHandler,
	collectionHandler *handler.CollectionHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Resolve the session cookie on every request; anonymous requests pass.
	e.Use(sessions.Middleware())

	e.Static("/static", "static")

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Public pages
	e.GET("/", drinkHandler.Home)
	e.GET("/logout", authHandler.Logout)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)

	e.GET("/ingredients", ingredientHandler.List)
	e.POST("/ingredients", ingredientHandler.Search)
	e.GET("/ingredients/:name", ingredientHandler.FilterByName)

	e.GET("/collection", collectionHandler.All)
	e.GET("/collection/:name", collectionHandler.ByName)

	// Drink routes carry reserved path values (insertDrink, randomDrink), so
	// the handlers gate themselves per value.
	e.GET("/drink/:id", drinkHandler.Show)
	e.POST("/drink/:id", drinkHandler.Save)
	e.GET("/delete-drink/:id", drinkHandler.Delete)

	// Form pages that redirect anonymous visitors to /login.
	gated := e.Group("", sessions.RequireLogin)
	gated.GET("/add-ingredient", ingredientHandler.AddPage)
	gated.POST("/add-ingredient", ingredientHandler.Add)
	gated.GET("/edit-drink/:id", drinkHandler.EditPage)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
