package models

// Completion marks a habit as done on one calendar day. Dates are stored as
// "YYYY-MM-DD" strings, so the (habit_id, date) uniqueness constraint and
// range queries work on plain text comparison.
type Completion struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	HabitID   uint   `gorm:"not null;uniqueIndex:idx_habit_logs_habit_date" json:"habit_id"`
	Date      string `gorm:"not null;uniqueIndex:idx_habit_logs_habit_date" json:"date"`
	Completed int    `gorm:"not null;default:1" json:"completed"`
}

func (Completion) TableName() string {
	return "habit_logs"
}

// CompletionReceipt is the write acknowledgement returned by the habit store
// and passed through the gateway unchanged.
type CompletionReceipt struct {
	HabitID   uint   `json:"habitId"`
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// CompletionLog is a habit_logs row joined with its owning habit.
type CompletionLog struct {
	ID        uint   `gorm:"column:id" json:"id"`
	HabitID   uint   `gorm:"column:habit_id" json:"habit_id"`
	Date      string `gorm:"column:date" json:"date"`
	Completed int    `gorm:"column:completed" json:"completed"`
	UserID    uint   `gorm:"column:user_id" json:"user_id"`
	Name      string `gorm:"column:name" json:"name"`
}
