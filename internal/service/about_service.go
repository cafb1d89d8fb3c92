package service

import (
	"errors"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

// DefaultAboutContent is the bio shown before the admin writes their own.
const DefaultAboutContent = `I am a medical student with a deep passion for leveraging technology to solve complex problems in healthcare.
My journey combines rigorous medical training with expertise in machine learning, computer vision, and full-stack
web development.

Through my research and projects, I've developed automated systems for medical image analysis, built predictive
models for patient outcomes, and created web applications that make healthcare data more accessible. I believe in
the power of interdisciplinary collaboration to drive innovation in medicine.

When I'm not studying or coding, I enjoy exploring new technologies, contributing to open-source projects, and
sharing knowledge with the medical and tech communities. My goal is to bridge the gap between clinical practice
and cutting-edge technology to improve patient care.`

// AboutService provides access to the single about-page row.
type AboutService struct {
	db *gorm.DB
}

// NewAboutService creates an AboutService instance.
func NewAboutService(gdb *gorm.DB) *AboutService {
	return &AboutService{db: gdb}
}

// Find returns the about page, or nil when none has been written yet.
func (s *AboutService) Find() (*db.AboutPage, error) {
	var page db.AboutPage
	if err := s.db.First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &page, nil
}

// Ensure returns the about page, creating it with the default bio when absent.
func (s *AboutService) Ensure() (*db.AboutPage, error) {
	page, err := s.Find()
	if err != nil {
		return nil, err
	}
	if page != nil {
		return page, nil
	}

	created := db.AboutPage{Content: DefaultAboutContent}
	if err := s.db.Create(&created).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// Save upserts the single about-page row.
func (s *AboutService) Save(content string) (*db.AboutPage, error) {
	var page db.AboutPage
	err := s.db.First(&page).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		page = db.AboutPage{Content: content}
		if err := s.db.Create(&page).Error; err != nil {
			return nil, err
		}
		return &page, nil
	}

	page.Content = content
	if err := s.db.Save(&page).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// SplitParagraphs breaks free text on blank lines. Newline styles are
// normalized first; single newlines stay inside their paragraph so the
// template can render them as line breaks.
func SplitParagraphs(content string) []string {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var paragraphs []string
	for _, para := range strings.Split(normalized, "\n\n") {
		para = strings.TrimSpace(para)
		if para != "" {
			paragraphs = append(paragraphs, para)
		}
	}
	return paragraphs
}
