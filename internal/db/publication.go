package db

import "gorm.io/gorm"

// Publication 定义论文条目模型
type Publication struct {
	gorm.Model
	Title   string `gorm:"size:500;not null"`
	Journal string `gorm:"size:300;not null"`
	// Free-form string. Ordering compares strings, which only matches
	// chronology for ISO-style dates.
	PublicationDate string `gorm:"size:100;not null"`
	Authors         string `gorm:"type:text;not null"`
	URL             string `gorm:"size:1000;not null"`
}
