package dto

import "time"

type CreateTransactionRequest struct {
	Type            string    `json:"type" binding:"required,oneof=income expense"`
	Category        string    `json:"category" binding:"required,max=100"`
	Amount          float64   `json:"amount" binding:"required,gt=0"`
	TransactionDate time.Time `json:"transaction_date" binding:"required"`
	Description     string    `json:"description"`
	IsRecurring     bool      `json:"is_recurring"`
	Recurrence      string    `json:"recurrence" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
}

// UpdateTransactionRequest carries a partial update; nil fields are left
// untouched.
type UpdateTransactionRequest struct {
	Type            *string    `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category        *string    `json:"category,omitempty" binding:"omitempty,max=100"`
	Amount          *float64   `json:"amount,omitempty" binding:"omitempty,gt=0"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	Description     *string    `json:"description,omitempty"`
	IsRecurring     *bool      `json:"is_recurring,omitempty"`
	Recurrence      *string    `json:"recurrence,omitempty" binding:"omitempty,oneof=weekly monthly quarterly yearly"`
}
