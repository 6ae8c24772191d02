package server

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"droscher.com/BrewNotes/configs"
	"droscher.com/BrewNotes/pkg/repository"
)

type Server struct {
	repository *repository.Repository
	logger     *zap.Logger
	config     *configs.Config
}

func New(repository *repository.Repository, logger *zap.Logger, config *configs.Config) *Server {
	return &Server{repository: repository, logger: logger, config: config}
}

// Routes builds the echo instance with the full HTTP surface mounted.
func (s *Server) Routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	api := e.Group("/api")

	api.GET("/beans", s.ListBeans)
	api.POST("/beans", s.CreateBean)
	api.GET("/beans/:id", s.GetBean)
	api.PUT("/beans/:id", s.UpdateBean)
	api.POST("/beans/:id/archive", s.ArchiveBean)
	api.POST("/beans/:id/unarchive", s.UnarchiveBean)
	api.POST("/beans/:id/photo", s.UploadBeanPhoto)
	api.GET("/beans/:id/analytics", s.BeanAnalytics)
	api.GET("/beans/:id/recommended-settings", s.BeanRecommendedSettings)

	api.GET("/drinks", s.ListDrinks)
	api.POST("/drinks", s.CreateDrink)
	api.GET("/drinks/:id", s.GetDrink)
	api.PUT("/drinks/:id", s.UpdateDrink)
	api.DELETE("/drinks/:id", s.DeleteDrink)
	api.POST("/drinks/:id/photo", s.UploadDrinkPhoto)

	api.GET("/analytics", s.Summary)

	api.GET("/export.json", s.ExportJSON)
	api.GET("/export.csv", s.ExportCSV)
	api.GET("/export.zip", s.ExportZip)

	e.GET("/health", s.Health)

	e.Static("/uploads", s.config.Storage.UploadDir)

	// Serve the prebuilt frontend bundle when one is present.
	if info, err := os.Stat(s.config.Server.FrontendDir); err == nil && info.IsDir() {
		e.Static("/", s.config.Server.FrontendDir)
	}

	return e
}

func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
