package server

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"droscher.com/BrewNotes/pkg/upload"
)

func (s *Server) ListBeans(c echo.Context) error {
	includeArchived, _ := strconv.ParseBool(c.QueryParam("include_archived"))

	beans, err := s.repository.GetBeans(c.Request().Context(), includeArchived)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, BeansFromModel(beans))
}

func (s *Server) CreateBean(c echo.Context) error {
	var req BeanCreate
	if err := c.Bind(&req); err != nil {
		return err
	}

	if req.Name == "" {
		return validationError("name is required")
	}

	bean, err := BeanCreateToModel(req)
	if err != nil {
		return err
	}

	created, err := s.repository.AddBean(c.Request().Context(), bean)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, BeanFromModel(created))
}

func (s *Server) GetBean(c echo.Context) error {
	bean, err := s.repository.GetBeanByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, BeanFromModel(bean))
}

func (s *Server) UpdateBean(c echo.Context) error {
	ctx := c.Request().Context()

	bean, err := s.repository.GetBeanByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	var patch BeanPatch
	if err = c.Bind(&patch); err != nil {
		return err
	}

	if err = ApplyBeanPatch(bean, patch); err != nil {
		return err
	}

	updated, err := s.repository.SaveBean(ctx, bean)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, BeanFromModel(updated))
}

func (s *Server) ArchiveBean(c echo.Context) error {
	return s.setArchived(c, true)
}

func (s *Server) UnarchiveBean(c echo.Context) error {
	return s.setArchived(c, false)
}

func (s *Server) setArchived(c echo.Context, archived bool) error {
	ctx := c.Request().Context()

	bean, err := s.repository.GetBeanByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	bean.Archived = archived

	updated, err := s.repository.SaveBean(ctx, bean)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, BeanFromModel(updated))
}

func (s *Server) UploadBeanPhoto(c echo.Context) error {
	ctx := c.Request().Context()

	bean, err := s.repository.GetBeanByID(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	data, filename, err := readUpload(c)
	if err != nil {
		return err
	}

	uploadDir := filepath.Join(s.config.Storage.UploadDir, "beans")
	thumbDir := filepath.Join(uploadDir, "thumbs")

	storedPath, thumbPath, err := upload.Save(data, filename, uploadDir, thumbDir)
	if err != nil {
		s.logger.Warn("bean photo upload failed", zap.String("bean_id", bean.ID), zap.Error(err))

		return httpError(err)
	}

	bean.ImagePath = pointy.String(storedPath)
	bean.ThumbnailPath = pointy.String(thumbPath)

	updated, err := s.repository.SaveBean(ctx, bean)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, BeanFromModel(updated))
}

func readUpload(c echo.Context) ([]byte, string, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "", echo.NewHTTPError(http.StatusUnprocessableEntity, "a file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close() //nolint:errcheck // read errors are what matter here

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return data, fileHeader.Filename, nil
}
