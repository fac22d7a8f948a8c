package domain

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// RecurrenceInterval describes how often a recurring transaction repeats.
type RecurrenceInterval string

const (
	RecurrenceWeekly    RecurrenceInterval = "weekly"
	RecurrenceMonthly   RecurrenceInterval = "monthly"
	RecurrenceQuarterly RecurrenceInterval = "quarterly"
	RecurrenceYearly    RecurrenceInterval = "yearly"
)

// Transaction is a user-owned financial record. Every query against it is
// scoped by UserID.
type Transaction struct {
	ID              string              `json:"id" gorm:"primaryKey"`
	UserID          string              `json:"user_id" gorm:"index;not null"`
	Type            TransactionType     `json:"type" gorm:"not null"`
	Category        string              `json:"category" gorm:"not null"`
	Amount          float64             `json:"amount" gorm:"not null"`
	TransactionDate time.Time           `json:"transaction_date" gorm:"not null"`
	Description     string              `json:"description,omitempty"`
	IsRecurring     bool                `json:"is_recurring" gorm:"default:false"`
	Recurrence      *RecurrenceInterval `json:"recurrence,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
