package db

import "gorm.io/gorm"

// Experience 定义经历条目模型
type Experience struct {
	gorm.Model
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
}
