package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"` // stored lowercased
	Password string `json:"-"`
	Address  string `json:"address"`
	Role     Role   `gorm:"not null;default:user" json:"role"`

	// Relations — preload only when needed
	StoresOwned []Store  `gorm:"foreignKey:OwnerID" json:"-"`
	Ratings     []Rating `json:"-"`
}
