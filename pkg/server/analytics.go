package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) BeanAnalytics(c echo.Context) error {
	drinks, err := s.repository.GetDrinksForBean(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, AnalyticsFromDrinks(drinks))
}

func (s *Server) BeanRecommendedSettings(c echo.Context) error {
	drinks, err := s.repository.GetDrinksForBean(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, RecommendationFromDrinks(drinks))
}

func (s *Server) Summary(c echo.Context) error {
	summary, err := s.repository.GetSummary(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, summary)
}
