package db

import "gorm.io/gorm"

// CV is the single row pointing at the downloadable CV file.
// FilePath carries a graphics/ prefix for the bundled default
// or an uploads/ prefix for admin-uploaded replacements.
type CV struct {
	gorm.Model
	FilePath     string `gorm:"size:500;not null"`
	DownloadName string `gorm:"size:200;not null"`
}
