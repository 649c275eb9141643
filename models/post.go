package models

import "time"

// Post represents a single blog post. The gambar field holds either a plain
// image reference supplied by the client or the storage path of an uploaded file.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Gambar    string    `gorm:"size:512;not null" json:"gambar"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	Tahun     int       `gorm:"not null" json:"tahun"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
