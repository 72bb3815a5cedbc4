package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Name         string `gorm:"not null" json:"name"`
	Role         string `gorm:"default:'user'" json:"role"`
	TokenVersion int    `gorm:"default:1" json:"-"`

	Wallets []Wallet `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Items   []Item   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

// CreateUserInput carries the fields accepted at registration time.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
