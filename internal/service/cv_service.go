package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrCVNameMissing = errors.New("cv download name is required")
	ErrCVFileMissing = errors.New("cv file not found")
)

// Bundled fallback served until the admin uploads a CV of their own.
const (
	DefaultCVPath         = "graphics/my_cv.pdf"
	DefaultCVDownloadName = "CV_Sundeep_Chakladar.pdf"
)

// CVService manages the single CV row and resolves its file on disk.
type CVService struct {
	db *gorm.DB
}

// NewCVService creates a CVService instance.
func NewCVService(gdb *gorm.DB) *CVService {
	return &CVService{db: gdb}
}

// Get returns the CV row, or nil when none has been saved yet.
func (s *CVService) Get() (*db.CV, error) {
	var cv db.CV
	if err := s.db.First(&cv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cv, nil
}

// Save upserts the CV row. downloadName is required and gets a .pdf suffix
// when missing. uploadedPath, when non-empty, replaces the stored file path;
// the previous uploads/ path is returned so the caller can delete the file
// (bundled graphics/ defaults are never reported for deletion).
func (s *CVService) Save(downloadName, uploadedPath string) (*db.CV, string, error) {
	name := strings.TrimSpace(downloadName)
	if name == "" {
		return nil, "", ErrCVNameMissing
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}

	cv, err := s.Get()
	if err != nil {
		return nil, "", err
	}

	if cv == nil {
		path := uploadedPath
		if path == "" {
			path = DefaultCVPath
		}
		cv = &db.CV{FilePath: path, DownloadName: name}
		if err := s.db.Create(cv).Error; err != nil {
			return nil, "", err
		}
		return cv, "", nil
	}

	var replaced string
	if uploadedPath != "" {
		if strings.HasPrefix(cv.FilePath, UploadPrefix) {
			replaced = cv.FilePath
		}
		cv.FilePath = uploadedPath
	}
	cv.DownloadName = name

	if err := s.db.Save(cv).Error; err != nil {
		return nil, "", err
	}
	return cv, replaced, nil
}

// Resolve locates the CV file on disk and returns its path together with the
// download name. Paths are interpreted by prefix: graphics/ under the bundled
// asset directory, uploads/ under the upload directory, anything else relative
// to the working directory. Falls back to the bundled default when the stored
// file is missing; ErrCVFileMissing when that is absent too.
func (s *CVService) Resolve(graphicsDir, uploadDir string) (string, string, error) {
	cv, err := s.Get()
	if err != nil {
		return "", "", err
	}

	if cv != nil {
		var path string
		switch {
		case strings.HasPrefix(cv.FilePath, "graphics/"):
			path = filepath.Join(graphicsDir, strings.TrimPrefix(cv.FilePath, "graphics/"))
		case strings.HasPrefix(cv.FilePath, UploadPrefix):
			path = filepath.Join(uploadDir, strings.TrimPrefix(cv.FilePath, UploadPrefix))
		default:
			path = cv.FilePath
		}
		if _, err := os.Stat(path); err == nil {
			return path, cv.DownloadName, nil
		}
	}

	fallback := filepath.Join(graphicsDir, strings.TrimPrefix(DefaultCVPath, "graphics/"))
	if _, err := os.Stat(fallback); err == nil {
		return fallback, DefaultCVDownloadName, nil
	}
	return "", "", ErrCVFileMissing
}
