package model

// Account is a staff login for the admin surface.
type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
	Role     string `gorm:"size:20;not null" json:"role"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
