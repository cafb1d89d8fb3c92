package db

import "gorm.io/gorm"

// AboutPage holds the single free-text bio shown on /about.
// Paragraphs are separated by blank lines.
type AboutPage struct {
	gorm.Model
	Content string `gorm:"type:text;not null"`
}
