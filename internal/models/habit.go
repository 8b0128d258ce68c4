package models

import "time"

// DefaultFrequency is used when a caller omits the frequency label. The label
// is free-form: "daily" and "weekly" are conventional, anything else is kept
// as supplied.
const DefaultFrequency = "daily"

type Habit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Name      string    `gorm:"not null" json:"name"`
	Frequency string    `gorm:"not null" json:"frequency"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
