package model

import "time"

type GalleryImage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:100;not null" json:"title"`
	Image      string    `gorm:"size:500;not null" json:"image"`
	UploadedAt time.Time `gorm:"autoCreateTime;<-:create;index" json:"uploadedAt"`
}

type CreateGalleryImageInput struct {
	Title string `json:"title" validate:"required,max=100"`
	Image string `json:"image" validate:"required,url"`
}
