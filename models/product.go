package models

import "time"

// Known catalog categories. The column is an open string set; these are the
// values the storefront ships with.
const (
	CategoryBed      = "bed"
	CategorySofa     = "sofa"
	CategoryWardrobe = "wardrobe"
)

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"not null;index" json:"category"`
	ImageURL    string    `json:"image_url"`
	InStock     bool      `gorm:"default:true" json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}
