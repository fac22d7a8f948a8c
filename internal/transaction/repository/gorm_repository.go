package repository

import (
	"errors"
	"time"

	"github.com/xniebuhr/FinanceTracker/internal/transaction/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTransactionRepository implements TransactionRepository using GORM
type gormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GORM-based TransactionRepository
func NewGormTransactionRepository(db *gorm.DB) TransactionRepository {
	return &gormTransactionRepository{db: db}
}

func (r *gormTransactionRepository) Create(tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	tx.CreatedAt = time.Now()
	tx.UpdatedAt = time.Now()
	return r.db.Create(tx).Error
}

func (r *gormTransactionRepository) FindByID(id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.Where("id = ?", id).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tx, nil
}

func (r *gormTransactionRepository) FindByUserID(userID string, limit, offset int) ([]*domain.Transaction, int64, error) {
	var txs []*domain.Transaction
	var total int64

	query := r.db.Model(&domain.Transaction{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("transaction_date DESC, created_at DESC").
		Limit(limit).Offset(offset).Find(&txs).Error

	return txs, total, err
}

func (r *gormTransactionRepository) Update(tx *domain.Transaction) error {
	tx.UpdatedAt = time.Now()
	return r.db.Save(tx).Error
}

func (r *gormTransactionRepository) Delete(id string) error {
	return r.db.Delete(&domain.Transaction{}, "id = ?", id).Error
}

func (r *gormTransactionRepository) DeleteByUserID(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Transaction{}).Error
}
