package models

import (
	"time"

	"gorm.io/gorm"
)

// Item belongs to a Category and optionally references an Image. Both must be
// owned by the same owner as the item itself; the repositories reject
// cross-owner references before writing.
type Item struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string
	CategoryID  uint      `gorm:"not null;index"`
	OwnerID     uint      `gorm:"not null;index"`
	ImageID     *uint     `gorm:"index"`
	CreatedOn   time.Time `gorm:"not null"`
}
