package router

import (
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/handler"
	"github.com/portfolio/internal/logger"
)

// Admin sessions expire rather than living forever.
const sessionTTL = 12 * time.Hour

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	r.Use(limitRequestBody(cfg.MaxUploadBytes))

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("portfolio_session", store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(template.FuncMap{
		"assetURL": assetURL,
	})
	if pattern := filepath.Join(cfg.TemplateDir, "*.html"); hasTemplates(pattern) {
		r.LoadHTMLGlob(pattern)
	}

	// 静态文件服务
	r.Static("/graphics", cfg.GraphicsDir)
	r.Static("/static/uploads", cfg.UploadDir)

	api := handler.NewAPI(db.DB, cfg, log)

	// 公开路由
	r.GET("/", api.ShowHome)
	r.GET("/projects", api.ShowProjectsArchive)
	r.GET("/project/:slug", api.ShowProjectDetail)
	r.GET("/about", api.ShowAbout)
	r.GET("/download-cv", api.DownloadCV)

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", api.ShowDashboard)

			auth.GET("/projects", api.ShowProjectList)
			auth.GET("/projects/new", api.ShowProjectNew)
			auth.POST("/projects/new", api.CreateProject)
			auth.GET("/projects/:id/edit", api.ShowProjectEdit)
			auth.POST("/projects/:id/edit", api.UpdateProject)
			auth.POST("/projects/:id/delete", api.DeleteProject)
			auth.POST("/projects/:id/images/:imageID/delete", api.DeleteProjectImage)

			auth.GET("/publications", api.ShowPublicationList)
			auth.GET("/publications/new", api.ShowPublicationNew)
			auth.POST("/publications/new", api.CreatePublication)
			auth.GET("/publications/:id/edit", api.ShowPublicationEdit)
			auth.POST("/publications/:id/edit", api.UpdatePublication)
			auth.POST("/publications/:id/delete", api.DeletePublication)

			auth.GET("/experiences", api.ShowExperienceList)
			auth.GET("/experiences/new", api.ShowExperienceNew)
			auth.POST("/experiences/new", api.CreateExperience)
			auth.GET("/experiences/:id/edit", api.ShowExperienceEdit)
			auth.POST("/experiences/:id/edit", api.UpdateExperience)
			auth.POST("/experiences/:id/delete", api.DeleteExperience)

			auth.GET("/about/edit", api.ShowAboutForm)
			auth.POST("/about/edit", api.UpdateAbout)

			auth.GET("/cv/edit", api.ShowCVForm)
			auth.POST("/cv/edit", api.UpdateCV)
		}
	}

	return r
}

// assetURL resolves a stored asset path to its public URL. graphics/ paths
// point at bundled assets, everything else lives under /static.
func assetURL(path string) string {
	if strings.HasPrefix(path, "graphics/") {
		return "/" + path
	}
	return "/static/" + path
}

func hasTemplates(pattern string) bool {
	matches, err := filepath.Glob(pattern)
	return err == nil && len(matches) > 0
}

// limitRequestBody caps request bodies at the configured upload size so
// oversized uploads fail at the transport boundary.
func limitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Debug("request handled")
	}
}
