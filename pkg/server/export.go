package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"droscher.com/BrewNotes/pkg/export"
	"droscher.com/BrewNotes/pkg/model"
)

func (s *Server) ExportJSON(c echo.Context) error {
	beans, drinks, err := s.dataset(c)
	if err != nil {
		return httpError(err)
	}

	payload, err := export.JSON(beans, drinks)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, payload)
}

func (s *Server) ExportCSV(c echo.Context) error {
	beans, drinks, err := s.dataset(c)
	if err != nil {
		return httpError(err)
	}

	text, err := export.CSV(beans, drinks)
	if err != nil {
		return err
	}

	return c.String(http.StatusOK, text)
}

func (s *Server) ExportZip(c echo.Context) error {
	beans, drinks, err := s.dataset(c)
	if err != nil {
		return httpError(err)
	}

	if err = os.MkdirAll(s.config.Storage.DataDir, 0o755); err != nil {
		return err
	}

	// The archive lives at a fixed path, so concurrent exports overwrite each
	// other; accepted for a single-user deployment.
	destination := filepath.Join(s.config.Storage.DataDir, "export.zip")

	if err = export.Zip(beans, drinks, s.config.Storage.UploadDir, destination); err != nil {
		return err
	}

	return c.Attachment(destination, "export.zip")
}

func (s *Server) dataset(c echo.Context) ([]*model.Bean, []*model.DrinkLog, error) {
	ctx := c.Request().Context()

	beans, err := s.repository.GetBeans(ctx, true)
	if err != nil {
		return nil, nil, err
	}

	drinks, err := s.repository.GetDrinks(ctx)
	if err != nil {
		return nil, nil, err
	}

	return beans, drinks, nil
}
