package service

import (
	"errors"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var ErrPublicationNotFound = errors.New("publication not found")

// PublicationService handles publication CRUD.
type PublicationService struct {
	db *gorm.DB
}

// PublicationInput represents fields accepted when creating or updating a publication.
type PublicationInput struct {
	Title           string
	Journal         string
	PublicationDate string
	Authors         string
	URL             string
}

// NewPublicationService creates a PublicationService instance.
func NewPublicationService(gdb *gorm.DB) *PublicationService {
	return &PublicationService{db: gdb}
}

// List returns publications ordered by publication date descending.
// Dates are free-form strings, so the ordering is lexicographic and only
// chronological for ISO-style values.
func (s *PublicationService) List() ([]db.Publication, error) {
	var publications []db.Publication
	if err := s.db.Order("publication_date desc").Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

// Get fetches a publication by id.
func (s *PublicationService) Get(id uint) (*db.Publication, error) {
	var publication db.Publication
	if err := s.db.First(&publication, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPublicationNotFound
		}
		return nil, err
	}
	return &publication, nil
}

// Create stores a new publication.
func (s *PublicationService) Create(input PublicationInput) (*db.Publication, error) {
	publication := db.Publication{
		Title:           input.Title,
		Journal:         input.Journal,
		PublicationDate: input.PublicationDate,
		Authors:         input.Authors,
		URL:             input.URL,
	}
	if err := s.db.Create(&publication).Error; err != nil {
		return nil, err
	}
	return &publication, nil
}

// Update applies field changes and refreshes the update timestamp.
func (s *PublicationService) Update(id uint, input PublicationInput) (*db.Publication, error) {
	publication, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	publication.Title = input.Title
	publication.Journal = input.Journal
	publication.PublicationDate = input.PublicationDate
	publication.Authors = input.Authors
	publication.URL = input.URL

	if err := s.db.Save(publication).Error; err != nil {
		return nil, err
	}
	return publication, nil
}

// Delete removes a publication.
func (s *PublicationService) Delete(id uint) error {
	publication, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(publication).Error
}
