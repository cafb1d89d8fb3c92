package db

import "gorm.io/gorm"

// Project categories shown as separate sections on the homepage.
const (
	CategoryMedicine = "medicine"
	CategoryCreative = "creative"
)

// Project 定义作品集项目模型
type Project struct {
	gorm.Model
	Category         string `gorm:"not null"` // medicine, creative
	Title            string `gorm:"size:200;not null"`
	Slug             string `gorm:"size:200;uniqueIndex;not null"`
	PreviewSummary   string `gorm:"type:text;not null"`
	PreviewImagePath string `gorm:"size:500;not null"`
	PageIntroText    string `gorm:"type:text"`

	Images []ProjectImage `gorm:"constraint:OnDelete:CASCADE"`
}

// ProjectImage is a gallery image owned by a project, ordered for display.
type ProjectImage struct {
	gorm.Model
	ProjectID    uint   `gorm:"not null;index"`
	ImagePath    string `gorm:"size:500;not null"`
	DisplayOrder int    `gorm:"default:0"`
}
