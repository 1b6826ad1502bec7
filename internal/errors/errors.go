package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAlreadyExists is returned when a username, ingredient, or drink name
	// collides with a stored record.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthenticated is returned when an operation requires a session
	// identity and none is present.
	ErrUnauthenticated = errors.New("not logged in")
	// ErrForbidden is returned when the acting user is not the owner of the
	// drink being mutated.
	ErrForbidden = errors.New("not the owner of this drink")
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCollection is returned by random selection when there is nothing
	// to pick from.
	ErrEmptyCollection = errors.New("no drinks in the collection")
	// ErrInvalidID is returned for identifiers that cannot be parsed.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidInput is returned when a form payload is missing required
	// fields or fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable is returned when the database cannot serve a
	// request. It is mapped separately from ErrNotFound so infrastructure
	// failures are never presented as missing data.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Page is what the generic error template renders.
type Page struct {
	Status      int
	HeaderTitle string
	Message     string
}

// MapToPage maps domain errors to the rendered error page.
func MapToPage(err error) Page {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidID):
		return Page{http.StatusNotFound, "404 Not Found", "We could not find what you were looking for."}
	case errors.Is(err, ErrEmptyCollection):
		return Page{http.StatusNotFound, "404 Not Found", "There are no drinks in the collection yet."}
	case errors.Is(err, ErrUnauthenticated):
		return Page{http.StatusUnauthorized, "401 Unauthorized", "You need to log in to do that."}
	case errors.Is(err, ErrForbidden):
		return Page{http.StatusUnauthorized, "401 Unauthorized", "Only the creator of a drink can change it."}
	case errors.Is(err, ErrInvalidInput):
		return Page{http.StatusBadRequest, "400 Bad Request", "The submitted form was missing required fields."}
	default:
		return Page{http.StatusInternalServerError, "500 Server Error", "Something went wrong on our side. Please try again."}
	}
}
