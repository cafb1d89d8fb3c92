package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultMaxUploadBytes caps multipart request bodies at 16 MiB.
const DefaultMaxUploadBytes int64 = 16 << 20

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	AdminPasswordHash string
	AdminPassword     string
	UploadDir         string
	GraphicsDir       string
	TemplateDir       string
	MaxUploadBytes    int64
	AllowedExtensions []string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "portfolio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "portfolio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	uploadDir := strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if uploadDir == "" {
		uploadDir = "static/uploads"
	}

	graphicsDir := strings.TrimSpace(os.Getenv("GRAPHICS_DIR"))
	if graphicsDir == "" {
		graphicsDir = "graphics"
	}

	templateDir := strings.TrimSpace(os.Getenv("TEMPLATE_DIR"))
	if templateDir == "" {
		templateDir = "web/template"
	}

	maxUpload := DefaultMaxUploadBytes
	if raw := strings.TrimSpace(os.Getenv("MAX_UPLOAD_BYTES")); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			maxUpload = parsed
		}
	}

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		AdminPassword:     strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),
		UploadDir:         uploadDir,
		GraphicsDir:       graphicsDir,
		TemplateDir:       templateDir,
		MaxUploadBytes:    maxUpload,
		AllowedExtensions: []string{"png", "jpg", "jpeg", "gif", "pdf"},
	}
}
