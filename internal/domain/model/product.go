package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Slug        string          `gorm:"type:varchar(200);not null;uniqueIndex" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock       int64           `gorm:"not null;default:0" json:"stock"`
	CategoryID  int64           `gorm:"not null;index" json:"category_id"`
	Images      string          `gorm:"type:text" json:"-"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// ImagesはJSON配列の文字列で保存する
func (p *Product) ImageList() []string {
	if p.Images == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(p.Images), &list); err != nil {
		return []string{}
	}
	return list
}

func (p *Product) SetImageList(list []string) {
	if len(list) == 0 {
		p.Images = ""
		return
	}
	b, err := json.Marshal(list)
	if err != nil {
		p.Images = ""
		return
	}
	p.Images = string(b)
}

// 先頭の画像（無ければ空文字）
func (p *Product) MainImage() string {
	list := p.ImageList()
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

func (p *Product) InStock() bool {
	return p.Stock > 0 && p.IsActive
}
