package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

func TestUpdateCVSavesNameWithoutUpload(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	api, _ := newTestAPI(t, gdb)
	router, _ := newSessionRouter()
	router.POST("/admin/cv/edit", api.UpdateCV)

	rec := postForm(router, "/admin/cv/edit", url.Values{"download_name": {"My Resume"}}, nil)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}

	cv, err := service.NewCVService(gdb).Get()
	if err != nil {
		t.Fatalf("get cv: %v", err)
	}
	if cv == nil {
		t.Fatal("expected cv row stored")
	}
	if cv.DownloadName != "My Resume.pdf" {
		t.Fatalf("expected .pdf suffix, got %q", cv.DownloadName)
	}
	if cv.FilePath != service.DefaultCVPath {
		t.Fatalf("expected bundled default path, got %q", cv.FilePath)
	}
}

func TestUpdateCVRequiresName(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	api, _ := newTestAPI(t, gdb)
	router, stub := newSessionRouter()
	router.POST("/admin/cv/edit", api.UpdateCV)

	rec := postForm(router, "/admin/cv/edit", url.Values{"download_name": {"  "}}, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected form redisplay with status %d, got %d", http.StatusOK, rec.Code)
	}
	if stub.lastName != "cv_form.html" {
		t.Fatalf("expected cv_form.html rendered, got %q", stub.lastName)
	}

	var count int64
	if err := gdb.Model(&db.CV{}).Count(&count).Error; err != nil {
		t.Fatalf("count cv rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cv row, got %d", count)
	}
}

func TestUpdateCVRejectsNonPDFUpload(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	api, cfg := newTestAPI(t, gdb)
	router, stub := newSessionRouter()
	router.POST("/admin/cv/edit", api.UpdateCV)

	req := multipartRequest(t, "/admin/cv/edit", map[string]string{
		"download_name": "My Resume",
	}, []uploadFile{
		{field: "cv_file", filename: "notes.txt", content: "plain text"},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected form redisplay with status %d, got %d", http.StatusOK, rec.Code)
	}
	if stub.lastName != "cv_form.html" {
		t.Fatalf("expected cv_form.html rendered, got %q", stub.lastName)
	}

	var count int64
	if err := gdb.Model(&db.CV{}).Count(&count).Error; err != nil {
		t.Fatalf("count cv rows: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no cv row, got %d", count)
	}

	entries, err := os.ReadDir(cfg.UploadDir)
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no file stored for rejected upload, found %d", len(entries))
	}
}

func TestUpdateCVStoresUploadedPDF(t *testing.T) {
	gdb, cleanup := setupHandlerTestDB(t)
	defer cleanup()

	api, cfg := newTestAPI(t, gdb)
	router, _ := newSessionRouter()
	router.POST("/admin/cv/edit", api.UpdateCV)

	req := multipartRequest(t, "/admin/cv/edit", map[string]string{
		"download_name": "cv",
	}, []uploadFile{
		{field: "cv_file", filename: "resume.pdf", content: "%PDF-1.4"},
	})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, rec.Code)
	}

	cv, err := service.NewCVService(gdb).Get()
	if err != nil {
		t.Fatalf("get cv: %v", err)
	}
	if cv == nil {
		t.Fatal("expected cv row stored")
	}
	if !strings.HasPrefix(cv.FilePath, "uploads/cv-") {
		t.Fatalf("unexpected stored path %q", cv.FilePath)
	}
	if _, err := os.Stat(filepath.Join(cfg.UploadDir, strings.TrimPrefix(cv.FilePath, "uploads/"))); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}
}
