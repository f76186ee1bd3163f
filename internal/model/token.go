package model

import (
	"gorm.io/gorm"
)

// Token is one persisted login session. Every login creates a row; logout
// deletes it. The row references its user by id only, no cascade. Issuance
// time is CreatedAt; expiry lives inside the signed token value itself.
type Token struct {
	gorm.Model
	UserID uint   `gorm:"column:user_id;not null;index"`
	Token  string `gorm:"column:token;not null;index"`
}
