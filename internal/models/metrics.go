package models

// Derived metric shapes. These are computed fresh per request and never
// persisted.

type SummaryItem struct {
	HabitID   uint   `json:"habitId"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type DailySummary struct {
	Date           string        `json:"date"`
	Summary        []SummaryItem `json:"summary"`
	CompletionRate int           `json:"completionRate"`
}

type StreakRecord struct {
	HabitID   uint   `json:"habitId"`
	HabitName string `json:"habitName"`
	Streak    int    `json:"streak"`
}

type StreakReport struct {
	Date    string         `json:"date"`
	Streaks []StreakRecord `json:"streaks"`
}

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// SummaryWithQuote is the merged daily-summary payload the gateway returns:
// the metrics fields inline plus the motivational quote.
type SummaryWithQuote struct {
	DailySummary
	Quote Quote `json:"quote"`
}
