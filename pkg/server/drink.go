package server

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/BrewNotes/pkg/upload"
)

func (s *Server) ListDrinks(c echo.Context) error {
	drinks, err := s.repository.GetDrinks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, DrinksFromModel(drinks))
}

func (s *Server) CreateDrink(c echo.Context) error {
	ctx := c.Request().Context()

	var req DrinkCreate
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := validateDrinkCreate(req); err != nil {
		return err
	}

	// The referenced bean must exist; the data layer does not enforce the
	// foreign key on every engine.
	if _, err := s.repository.GetBeanByID(ctx, req.BeanID); err != nil {
		return httpError(err)
	}

	created, err := s.repository.AddDrink(ctx, DrinkCreateToModel(req))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, DrinkFromModel(created))
}

func (s *Server) GetDrink(c echo.Context) error {
	drink, err := s.repository.GetDrinkByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, DrinkFromModel(drink))
}

func (s *Server) UpdateDrink(c echo.Context) error {
	ctx := c.Request().Context()

	drink, err := s.repository.GetDrinkByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	var patch DrinkPatch
	if err = c.Bind(&patch); err != nil {
		return err
	}

	if err = ApplyDrinkPatch(drink, patch); err != nil {
		return err
	}

	if patch.BeanID.Set {
		if _, err = s.repository.GetBeanByID(ctx, drink.BeanID); err != nil {
			return httpError(err)
		}
	}

	updated, err := s.repository.SaveDrink(ctx, drink)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, DrinkFromModel(updated))
}

func (s *Server) DeleteDrink(c echo.Context) error {
	if err := s.repository.DeleteDrink(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) UploadDrinkPhoto(c echo.Context) error {
	ctx := c.Request().Context()

	drink, err := s.repository.GetDrinkByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	data, filename, err := readUpload(c)
	if err != nil {
		return err
	}

	uploadDir := filepath.Join(s.config.Storage.UploadDir, "drinks")
	thumbDir := filepath.Join(uploadDir, "thumbs")

	storedPath, thumbPath, err := upload.Save(data, filename, uploadDir, thumbDir)
	if err != nil {
		s.logger.Warn("drink photo upload failed", zap.String("drink_id", drink.ID), zap.Error(err))

		return httpError(err)
	}

	drink.PhotoPath = pointy.String(storedPath)
	drink.ThumbnailPath = pointy.String(thumbPath)

	updated, err := s.repository.SaveDrink(ctx, drink)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, DrinkFromModel(updated))
}
