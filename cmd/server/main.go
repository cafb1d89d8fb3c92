package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/router"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// .env 文件可选，缺失时直接使用环境变量
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("portfolio")

	gin.SetMode(cfg.GinMode)

	cfg.AdminPasswordHash = resolveAdminHash(cfg, log)

	// 初始化数据库：迁移与种子数据都在启动阶段完成，失败即退出
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	if err := db.SeedIfEmpty(db.DB); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload directory: %v", err)
	}

	r := router.SetupRouter(cfg, log)
	log.WithField("addr", cfg.ListenAddr).Info("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}

// resolveAdminHash returns the bcrypt hash the login check compares against.
// An explicit hash wins; otherwise ADMIN_PASSWORD (or a development default)
// is hashed at startup.
func resolveAdminHash(cfg config.AppConfig, log *logger.Logger) string {
	if cfg.AdminPasswordHash != "" {
		return cfg.AdminPasswordHash
	}

	password := cfg.AdminPassword
	if password == "" {
		password = "admin"
		log.Warn("ADMIN_PASSWORD not set, using development default")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	return string(hash)
}
