package usecase

import (
	"github.com/xniebuhr/FinanceTracker/internal/transaction/domain"
	"github.com/xniebuhr/FinanceTracker/internal/transaction/dto"
	"github.com/xniebuhr/FinanceTracker/internal/transaction/repository"
)

// transactionUsecase implements TransactionUsecase interface
type transactionUsecase struct {
	txRepo repository.TransactionRepository
}

// NewTransactionUsecase creates a new instance of transactionUsecase
func NewTransactionUsecase(txRepo repository.TransactionRepository) TransactionUsecase {
	return &transactionUsecase{
		txRepo: txRepo,
	}
}

func (u *transactionUsecase) CreateTransaction(userID string, req *dto.CreateTransactionRequest) (*domain.Transaction, error) {
	tx := &domain.Transaction{
		UserID:          userID,
		Type:            domain.TransactionType(req.Type),
		Category:        req.Category,
		Amount:          req.Amount,
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
		IsRecurring:     req.IsRecurring,
	}
	if req.IsRecurring && req.Recurrence != "" {
		recurrence := domain.RecurrenceInterval(req.Recurrence)
		tx.Recurrence = &recurrence
	}

	if err := u.txRepo.Create(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (u *transactionUsecase) GetTransactionByID(userID, id string) (*domain.Transaction, error) {
	return u.findOwned(userID, id)
}

func (u *transactionUsecase) GetUserTransactions(userID string, limit, offset int) ([]*domain.Transaction, int64, error) {
	return u.txRepo.FindByUserID(userID, limit, offset)
}

func (u *transactionUsecase) UpdateTransaction(userID, id string, req *dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	tx, err := u.findOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		tx.Type = domain.TransactionType(*req.Type)
	}
	if req.Category != nil {
		tx.Category = *req.Category
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.TransactionDate != nil {
		tx.TransactionDate = *req.TransactionDate
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.IsRecurring != nil {
		tx.IsRecurring = *req.IsRecurring
		if !tx.IsRecurring {
			tx.Recurrence = nil
		}
	}
	if req.Recurrence != nil {
		recurrence := domain.RecurrenceInterval(*req.Recurrence)
		tx.Recurrence = &recurrence
	}

	if err := u.txRepo.Update(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (u *transactionUsecase) DeleteTransaction(userID, id string) error {
	tx, err := u.findOwned(userID, id)
	if err != nil {
		return err
	}
	return u.txRepo.Delete(tx.ID)
}

// findOwned resolves a record and hides other users' records behind the same
// not-found error as missing ones.
func (u *transactionUsecase) findOwned(userID, id string) (*domain.Transaction, error) {
	tx, err := u.txRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil || tx.UserID != userID {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}
