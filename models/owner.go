package models

import "gorm.io/gorm"

type Owner struct {
	gorm.Model
	Email      string     `gorm:"not null;unique"`
	Name       string     `gorm:"not null"`
	Categories []Category `gorm:"constraint:OnDelete:CASCADE;"`
	Items      []Item     `gorm:"constraint:OnDelete:CASCADE;"`
	Images     []Image    `gorm:"constraint:OnDelete:CASCADE;"`
}
