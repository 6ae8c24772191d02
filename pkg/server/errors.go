package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"droscher.com/BrewNotes/pkg/repository"
	"droscher.com/BrewNotes/pkg/upload"
)

// httpError maps domain errors onto HTTP status codes; anything unknown
// bubbles up as a 500 through echo's default error handler.
func httpError(err error) error {
	switch {
	case errors.Is(err, repository.ErrBeanNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Bean not found")
	case errors.Is(err, repository.ErrDrinkNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Drink not found")
	case errors.Is(err, upload.ErrNotAnImage):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "uploaded file is not an image")
	default:
		return err
	}
}
