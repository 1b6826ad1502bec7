package handler

import (
	"github.com/labstack/echo/v4"

	"mixbook/internal/auth"
	apperrors "mixbook/internal/errors"
)

// pageData decorates template data with the session username so every page
// can render the right navigation. The key is always present, possibly empty.
func pageData(c echo.Context, sessions *auth.Manager, data echo.Map) echo.Map {
	if data == nil {
		data = echo.Map{}
	}
	username, _ := sessions.Identity(c)
	data["Username"] = username
	return data
}

// renderError is the single boundary between domain errors and the generic
// error page. Store failures keep their own status here; they are never
// folded into not-found.
func renderError(c echo.Context, sessions *auth.Manager, err error) error {
	page := apperrors.MapToPage(err)
	if page.Status >= 500 {
		c.Logger().Error(err)
	}
	return c.Render(page.Status, "error.html", pageData(c, sessions, echo.Map{
		"HeaderTitle": page.HeaderTitle,
		"Message":     page.Message,
	}))
}
