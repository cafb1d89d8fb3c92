package router

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/logger"
)

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		SessionSecret:     "test-secret",
		UploadDir:         t.TempDir(),
		GraphicsDir:       t.TempDir(),
		TemplateDir:       t.TempDir(),
		MaxUploadBytes:    config.DefaultMaxUploadBytes,
		AllowedExtensions: []string{"png", "pdf"},
	}
}

func TestSetupRouterServesStaticMounts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db.DB = nil

	cfg := testConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.UploadDir, "shot.png"), []byte("upload-bytes"), 0o644); err != nil {
		t.Fatalf("write upload file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.GraphicsDir, "logo.png"), []byte("graphic-bytes"), 0o644); err != nil {
		t.Fatalf("write graphics file: %v", err)
	}

	r := SetupRouter(cfg, logger.New("router-test"))

	tests := []struct {
		path     string
		expected string
	}{
		{path: "/static/uploads/shot.png", expected: "upload-bytes"},
		{path: "/graphics/logo.png", expected: "graphic-bytes"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", tt.path, http.StatusOK, rec.Code)
		}
		if rec.Body.String() != tt.expected {
			t.Fatalf("%s: unexpected body %q", tt.path, rec.Body.String())
		}
	}
}

func TestSetupRouterGatesAdminRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db.DB = nil

	r := SetupRouter(testConfig(t), logger.New("router-test"))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/login" {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
}

func TestAssetURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bundled graphic", input: "graphics/test_image.png", expected: "/graphics/test_image.png"},
		{name: "uploaded file", input: "uploads/p-preview-1.png", expected: "/static/uploads/p-preview-1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assetURL(tt.input); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
