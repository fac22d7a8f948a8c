package repository

import (
	"github.com/xniebuhr/FinanceTracker/internal/transaction/domain"
)

// TransactionRepository defines data access for financial records.
type TransactionRepository interface {
	// Create creates a new transaction
	Create(tx *domain.Transaction) error

	// FindByID finds a transaction by its ID
	FindByID(id string) (*domain.Transaction, error)

	// FindByUserID returns a page of the user's transactions plus the total
	// count
	FindByUserID(userID string, limit, offset int) ([]*domain.Transaction, int64, error)

	// Update updates an existing transaction
	Update(tx *domain.Transaction) error

	// Delete deletes a transaction by ID
	Delete(id string) error

	// DeleteByUserID removes every transaction owned by the user
	DeleteByUserID(userID string) error
}
