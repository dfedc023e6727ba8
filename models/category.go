package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name    string `gorm:"not null"`
	OwnerID uint   `gorm:"not null;index"`
	Items   []Item `gorm:"constraint:OnDelete:CASCADE;"`
}
