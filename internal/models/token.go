package models

import "time"

// Token is an opaque bearer secret. Tokens never expire; a row stays valid
// until it is removed out-of-band. Many tokens may point at one user.
type Token struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}
