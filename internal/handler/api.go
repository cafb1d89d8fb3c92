package handler

import (
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	projects     *service.ProjectService
	publications *service.PublicationService
	experiences  *service.ExperienceService
	about        *service.AboutService
	cvs          *service.CVService
	uploader     *service.Uploader
	log          *logger.Logger
	adminHash    string
	graphicsDir  string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig, log *logger.Logger) *API {
	return &API{
		db:           gdb,
		projects:     service.NewProjectService(gdb),
		publications: service.NewPublicationService(gdb),
		experiences:  service.NewExperienceService(gdb),
		about:        service.NewAboutService(gdb),
		cvs:          service.NewCVService(gdb),
		uploader:     service.NewUploader(cfg.UploadDir, cfg.AllowedExtensions),
		log:          log,
		adminHash:    cfg.AdminPasswordHash,
		graphicsDir:  cfg.GraphicsDir,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
