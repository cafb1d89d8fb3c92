package service

import (
	"errors"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var ErrExperienceNotFound = errors.New("experience not found")

// ExperienceService handles experience CRUD.
type ExperienceService struct {
	db *gorm.DB
}

// ExperienceInput represents fields accepted when creating or updating an experience.
type ExperienceInput struct {
	Title       string
	Description string
}

// NewExperienceService creates an ExperienceService instance.
func NewExperienceService(gdb *gorm.DB) *ExperienceService {
	return &ExperienceService{db: gdb}
}

// List returns all experiences in insertion order.
func (s *ExperienceService) List() ([]db.Experience, error) {
	var experiences []db.Experience
	if err := s.db.Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// ListNewestFirst returns experiences for the admin list view.
func (s *ExperienceService) ListNewestFirst() ([]db.Experience, error) {
	var experiences []db.Experience
	if err := s.db.Order("created_at desc").Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

// Get fetches an experience by id.
func (s *ExperienceService) Get(id uint) (*db.Experience, error) {
	var experience db.Experience
	if err := s.db.First(&experience, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return &experience, nil
}

// Create stores a new experience.
func (s *ExperienceService) Create(input ExperienceInput) (*db.Experience, error) {
	experience := db.Experience{
		Title:       input.Title,
		Description: input.Description,
	}
	if err := s.db.Create(&experience).Error; err != nil {
		return nil, err
	}
	return &experience, nil
}

// Update applies field changes and refreshes the update timestamp.
func (s *ExperienceService) Update(id uint, input ExperienceInput) (*db.Experience, error) {
	experience, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	experience.Title = input.Title
	experience.Description = input.Description

	if err := s.db.Save(experience).Error; err != nil {
		return nil, err
	}
	return experience, nil
}

// Delete removes an experience.
func (s *ExperienceService) Delete(id uint) error {
	experience, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(experience).Error
}
