package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/portfolio/internal/db"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrProjectTitleMissing    = errors.New("project title is required")
	ErrProjectSummaryMissing  = errors.New("project preview summary is required")
	ErrProjectCategoryInvalid = errors.New("project category is invalid")
	ErrImageNotFound          = errors.New("project image not found")
	ErrImageMismatch          = errors.New("image does not belong to project")
)

// DefaultPreviewImage is the bundled placeholder used when a project is
// created without a preview upload.
const DefaultPreviewImage = "graphics/test_image.png"

// ProjectService handles project and gallery image CRUD.
type ProjectService struct {
	db *gorm.DB
}

// ProjectInput represents fields accepted when creating or updating a project.
type ProjectInput struct {
	Title          string
	Category       string
	PreviewSummary string
	PageIntroText  string
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// List returns all projects, newest first. This is also the ordering the
// next-project link walks through.
func (s *ProjectService) List() ([]db.Project, error) {
	var projects []db.Project
	if err := s.db.Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByCategory returns the projects of one homepage section.
func (s *ProjectService) ListByCategory(category string) ([]db.Project, error) {
	var projects []db.Project
	if err := s.db.Where("category = ?", category).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Get fetches a project by id.
func (s *ProjectService) Get(id uint) (*db.Project, error) {
	var project db.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// GetBySlug fetches a project by its slug.
func (s *ProjectService) GetBySlug(slug string) (*db.Project, error) {
	var project db.Project
	if err := s.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

// Images returns a project's gallery images in display order.
func (s *ProjectService) Images(projectID uint) ([]db.ProjectImage, error) {
	var images []db.ProjectImage
	if err := s.db.Where("project_id = ?", projectID).
		Order("display_order").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// Create validates the input, derives a unique slug and stores the project.
// previewImagePath may be empty, in which case the bundled placeholder is used.
func (s *ProjectService) Create(input ProjectInput, previewImagePath string) (*db.Project, error) {
	if err := validateProjectInput(input, true); err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(input.Title, 0)
	if err != nil {
		return nil, err
	}

	if previewImagePath == "" {
		previewImagePath = DefaultPreviewImage
	}

	project := db.Project{
		Title:            strings.TrimSpace(input.Title),
		Slug:             slug,
		Category:         input.Category,
		PreviewSummary:   input.PreviewSummary,
		PreviewImagePath: previewImagePath,
		PageIntroText:    input.PageIntroText,
	}
	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update applies field changes, regenerating the slug only when the title
// changed. previewImagePath replaces the stored preview when non-empty.
func (s *ProjectService) Update(id uint, input ProjectInput, previewImagePath string) (*db.Project, error) {
	project, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := validateProjectInput(input, false); err != nil {
		return nil, err
	}

	project.Title = strings.TrimSpace(input.Title)
	if input.Category != "" {
		project.Category = input.Category
	}
	project.PreviewSummary = input.PreviewSummary
	project.PageIntroText = input.PageIntroText

	if newSlug := GenerateSlug(project.Title); newSlug != project.Slug {
		unique, err := s.uniqueSlug(project.Title, project.ID)
		if err != nil {
			return nil, err
		}
		project.Slug = unique
	}

	if previewImagePath != "" {
		project.PreviewImagePath = previewImagePath
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// SetPreviewImage points a project at a newly stored preview file.
func (s *ProjectService) SetPreviewImage(id uint, imagePath string) error {
	return s.db.Model(&db.Project{}).Where("id = ?", id).
		Update("preview_image_path", imagePath).Error
}

// Delete removes a project together with its gallery image rows and returns
// the deleted record so callers can clean up stored files.
func (s *ProjectService) Delete(id uint) (*db.Project, error) {
	var project db.Project
	if err := s.db.Preload("Images").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&db.ProjectImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// AttachImage adds a gallery image row at the given display order.
func (s *ProjectService) AttachImage(projectID uint, imagePath string, displayOrder int) (*db.ProjectImage, error) {
	image := db.ProjectImage{
		ProjectID:    projectID,
		ImagePath:    imagePath,
		DisplayOrder: displayOrder,
	}
	if err := s.db.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// GalleryCount returns how many gallery images a project already owns,
// which is where appended images continue numbering from.
func (s *ProjectService) GalleryCount(projectID uint) (int, error) {
	var count int64
	if err := s.db.Model(&db.ProjectImage{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// DeleteImage removes one gallery image row after checking it belongs to the
// project named in the route. Returns the deleted row for file cleanup.
func (s *ProjectService) DeleteImage(projectID, imageID uint) (*db.ProjectImage, error) {
	var image db.ProjectImage
	if err := s.db.First(&image, imageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	if image.ProjectID != projectID {
		return nil, ErrImageMismatch
	}
	if err := s.db.Delete(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// NextProject walks the creation-date-descending list and returns the entry
// after current, wrapping around to the first. When current cannot be located
// the first project is returned, or the second if the first is current itself.
func (s *ProjectService) NextProject(current *db.Project) (*db.Project, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	for i := range all {
		if all[i].ID == current.ID {
			return &all[(i+1)%len(all)], nil
		}
	}

	if all[0].ID != current.ID {
		return &all[0], nil
	}
	if len(all) > 1 {
		return &all[1], nil
	}
	return nil, nil
}

func (s *ProjectService) uniqueSlug(title string, excludeID uint) (string, error) {
	base := GenerateSlug(title)
	candidate := base
	for counter := 1; ; counter++ {
		query := s.db.Model(&db.Project{}).Where("slug = ?", candidate)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func validateProjectInput(input ProjectInput, requireCategory bool) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrProjectTitleMissing
	}
	if strings.TrimSpace(input.PreviewSummary) == "" {
		return ErrProjectSummaryMissing
	}
	if input.Category == "" {
		if requireCategory {
			return ErrProjectCategoryInvalid
		}
		return nil
	}
	if input.Category != db.CategoryMedicine && input.Category != db.CategoryCreative {
		return ErrProjectCategoryInvalid
	}
	return nil
}
