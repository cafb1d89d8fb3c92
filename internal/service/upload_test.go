package service

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func TestUploaderSavePreviewStoresFile(t *testing.T) {
	dir := t.TempDir()
	uploader := NewUploader(dir, []string{"png", "jpg"})

	path, err := uploader.SavePreview(makeFileHeader(t, "photo.png", "image-bytes"), "my-project")
	if err != nil {
		t.Fatalf("save preview: %v", err)
	}

	if !strings.HasPrefix(path, "uploads/my-project-preview-") {
		t.Fatalf("unexpected stored path %q", path)
	}
	if !strings.HasSuffix(path, "-photo.png") {
		t.Fatalf("expected original filename suffix, got %q", path)
	}

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, UploadPrefix)))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestUploaderSaveGalleryEmbedsIndex(t *testing.T) {
	dir := t.TempDir()
	uploader := NewUploader(dir, []string{"jpg"})

	path, err := uploader.SaveGallery(makeFileHeader(t, "shot.jpg", "x"), "demo", 3)
	if err != nil {
		t.Fatalf("save gallery: %v", err)
	}
	if !strings.HasPrefix(path, "uploads/demo-gallery-3-") {
		t.Fatalf("unexpected stored path %q", path)
	}
}

func TestUploaderRejectsDisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	uploader := NewUploader(dir, []string{"pdf"})

	if _, err := uploader.SaveCV(makeFileHeader(t, "evil.exe", "binary")); err != ErrFileNotAllowed {
		t.Fatalf("expected ErrFileNotAllowed, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no files written for rejected upload, found %d", len(entries))
	}
}

func TestUploaderRejectsMissingFilename(t *testing.T) {
	uploader := NewUploader(t.TempDir(), []string{"png"})

	if _, err := uploader.SavePreview(nil, "slug"); err != ErrFilenameMissing {
		t.Fatalf("expected ErrFilenameMissing for nil file, got %v", err)
	}
}

func TestUploaderRemoveOnlyTouchesUploads(t *testing.T) {
	dir := t.TempDir()
	uploader := NewUploader(dir, []string{"png"})

	path, err := uploader.SavePreview(makeFileHeader(t, "a.png", "x"), "p")
	if err != nil {
		t.Fatalf("save preview: %v", err)
	}

	if err := uploader.Remove("graphics/test_image.png"); err != nil {
		t.Fatalf("removing a bundled path should be a no-op, got %v", err)
	}
	if err := uploader.Remove("uploads/does-not-exist.png"); err != nil {
		t.Fatalf("removing a missing upload should not error, got %v", err)
	}

	if err := uploader.Remove(path); err != nil {
		t.Fatalf("remove stored file: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(path, UploadPrefix))); !os.IsNotExist(err) {
		t.Fatalf("expected stored file to be deleted, stat err=%v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces become underscores", input: "my photo.png", expected: "my_photo.png"},
		{name: "path components dropped", input: "../../etc/secret.png", expected: "secret.png"},
		{name: "windows separators dropped", input: `..\..\shot.jpg`, expected: "shot.jpg"},
		{name: "special characters removed", input: "résumé (final).pdf", expected: "rsum_final.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSanitizeFilenameFallsBackForHostileNames(t *testing.T) {
	got := sanitizeFilename("###")
	if got == "" {
		t.Fatal("expected a generated name, got empty string")
	}
	if strings.ContainsAny(got, "/\\") {
		t.Fatalf("generated name contains separators: %q", got)
	}
}
