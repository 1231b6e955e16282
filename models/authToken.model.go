package models

import (
	"time"

	"gorm.io/gorm"
)

// AuthToken registers every issued JWT so the whole set can be revoked at once
// when a user's access level changes.
type AuthToken struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	JTI       string    `json:"jti" gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked" gorm:"default:false"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
