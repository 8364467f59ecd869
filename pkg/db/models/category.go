package models

import "time"

// Category groups products for browsing.
type Category struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string     `gorm:"column:name;not null;uniqueIndex"`
	Image      []byte     `gorm:"column:image"`
	Tags       []Tag      `gorm:"many2many:category_tags"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	LastUpdate *time.Time `gorm:"column:last_update"`
}

// Tag is a free-form label attached to categories.
type Tag struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;not null;uniqueIndex"`
}
