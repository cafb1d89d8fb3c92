package service

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFilenameMissing = errors.New("filename is required")
	ErrFileNotAllowed  = errors.New("file type not allowed")
)

// UploadPrefix tags database paths that point into the upload directory,
// as opposed to bundled assets under graphics/.
const UploadPrefix = "uploads/"

// Uploader 负责校验并保存上传文件
type Uploader struct {
	dir     string
	allowed map[string]struct{}
}

// NewUploader creates an Uploader storing files under dir and accepting
// only the given extensions.
func NewUploader(dir string, extensions []string) *Uploader {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &Uploader{dir: dir, allowed: allowed}
}

// Dir returns the upload directory.
func (u *Uploader) Dir() string {
	return u.dir
}

// Allowed reports whether the filename carries an accepted extension.
func (u *Uploader) Allowed(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return false
	}
	_, ok := u.allowed[ext]
	return ok
}

// SavePreview stores a project preview image and returns its uploads/ path.
func (u *Uploader) SavePreview(file *multipart.FileHeader, slug string) (string, error) {
	return u.save(file, fmt.Sprintf("%s-preview-%s", slug, timestamp()))
}

// SaveGallery stores a gallery image under its display index.
func (u *Uploader) SaveGallery(file *multipart.FileHeader, slug string, index int) (string, error) {
	return u.save(file, fmt.Sprintf("%s-gallery-%d-%s", slug, index, timestamp()))
}

// SaveCV stores an uploaded CV file.
func (u *Uploader) SaveCV(file *multipart.FileHeader) (string, error) {
	return u.save(file, fmt.Sprintf("cv-%s", timestamp()))
}

// Remove deletes a previously stored file. Only paths under the uploads/
// prefix are touched; bundled graphics are never deleted.
func (u *Uploader) Remove(storedPath string) error {
	if !strings.HasPrefix(storedPath, UploadPrefix) {
		return nil
	}
	target := filepath.Join(u.dir, strings.TrimPrefix(storedPath, UploadPrefix))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// save validates the upload, then writes it as {prefix}-{sanitized-name}.
// Nothing is written to disk for rejected files.
func (u *Uploader) save(file *multipart.FileHeader, prefix string) (string, error) {
	if file == nil || strings.TrimSpace(file.Filename) == "" {
		return "", ErrFilenameMissing
	}
	if !u.Allowed(file.Filename) {
		return "", ErrFileNotAllowed
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s", prefix, sanitizeFilename(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return UploadPrefix + name, nil
}

// sanitizeFilename strips path components and any character that could be
// used for traversal, keeping letters, digits, dots, hyphens and underscores.
func sanitizeFilename(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	clean := strings.Trim(b.String(), "._-")
	if clean == "" {
		// keep the extension recognizable even for hostile names
		return uuid.New().String() + strings.ToLower(filepath.Ext(base))
	}
	return clean
}

func timestamp() string {
	return time.Now().Format("20060102150405")
}
