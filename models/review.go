package models

import "time"

// Review is append-only. UserName is a snapshot of the author's display name
// taken at write time; later profile renames do not touch past reviews.
type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	UserName   string    `gorm:"not null" json:"user_name"`
	Rating     int       `gorm:"not null" json:"rating"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsApproved bool      `gorm:"default:true" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
