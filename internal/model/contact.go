package model

import (
	"gorm.io/gorm"
)

// Contact is a contact record owned by a single user. Slug is the public
// lookup identifier; it is globally unique so a slug alone resolves to one
// record, and it is regenerated on every edit.
type Contact struct {
	gorm.Model
	UserID    uint   `gorm:"column:user_id;not null;index"`
	FirstName string `gorm:"column:first_name;not null"`
	LastName  string `gorm:"column:last_name;not null"`
	Email     string `gorm:"column:email"`
	PhoneNo   string `gorm:"column:phone_no;not null"`
	Slug      string `gorm:"column:slug;uniqueIndex;not null"`
}
