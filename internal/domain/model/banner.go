package model

import "time"

// トップページのバナー
type Banner struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(200)" json:"name"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	Subtitle  string    `gorm:"type:varchar(500)" json:"subtitle"`
	Image     string    `gorm:"type:varchar(255);not null" json:"image"`
	Link      string    `gorm:"type:varchar(500)" json:"link"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
