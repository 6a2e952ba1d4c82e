package entity

import (
	"gorm.io/gorm"
)

type Store struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	OwnerID *uint  `json:"owner_id"` // references a User with role=owner when set
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`

	Ratings []Rating `json:"-"`
}
