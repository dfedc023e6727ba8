package models

import "gorm.io/gorm"

type Image struct {
	gorm.Model
	Path    string `gorm:"not null"`
	OwnerID uint   `gorm:"not null;index"`
}
