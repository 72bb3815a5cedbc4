package repositories

import (
	"fmt"

	"ledgr/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{
		db: db,
	}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	result := r.db.Create(wallet)
	if result.Error != nil {
		return fmt.Errorf("failed to create wallet: %w", result.Error)
	}
	return nil
}

func (r *walletRepository) GetByID(id uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) GetByIDForUpdate(id uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&wallet, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) ListByUser(userID uint) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// ListByUserForUpdate locks all of a user's wallet rows so the per-user
// cardinality and currency-uniqueness checks cannot race a concurrent create.
func (r *walletRepository) ListByUserForUpdate(userID uint) ([]models.Wallet, error) {
	var wallets []models.Wallet
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to lock wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) ListAll() ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := r.db.Order("created_at").Find(&wallets).Error; err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) Update(wallet *models.Wallet) error {
	result := r.db.Save(wallet)
	if result.Error != nil {
		return fmt.Errorf("failed to update wallet: %w", result.Error)
	}
	return nil
}

func (r *walletRepository) CreateTransaction(tx *models.Transaction) error {
	result := r.db.Create(tx)
	if result.Error != nil {
		return fmt.Errorf("failed to create transaction: %w", result.Error)
	}
	return nil
}

func (r *walletRepository) ListTransactions(walletID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Where("wallet_id = ?", walletID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *walletRepository) CountTransactions(walletID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).Where("wallet_id = ?", walletID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func (r *walletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletRepository{db: tx})
	})
}

func (r *walletRepository) TotalBalanceByCurrency() ([]CurrencyBalance, error) {
	var totals []CurrencyBalance
	err := r.db.Model(&models.Wallet{}).
		Select("currency, COALESCE(SUM(balance), 0) as total, COUNT(*) as wallets").
		Group("currency").
		Order("currency").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}
	return totals, nil
}

func (r *walletRepository) CountWallets() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Wallet{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count wallets: %w", err)
	}
	return count, nil
}
