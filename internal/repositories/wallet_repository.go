package repositories

import (
	"errors"

	"ledgr/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrDuplicateWallet    = errors.New("wallet already exists")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

// WalletRepository defines the interface for wallet-related database operations.
// ForUpdate variants take a row-level lock and are only meaningful inside
// ExecuteInTransaction.
type WalletRepository interface {
	// Wallet rows
	Create(wallet *models.Wallet) error
	GetByID(id uuid.UUID) (*models.Wallet, error)
	GetByIDForUpdate(id uuid.UUID) (*models.Wallet, error)
	ListByUser(userID uint) ([]models.Wallet, error)
	ListByUserForUpdate(userID uint) ([]models.Wallet, error)
	ListAll() ([]models.Wallet, error)
	Update(wallet *models.Wallet) error

	// Transaction rows
	CreateTransaction(tx *models.Transaction) error
	ListTransactions(walletID uuid.UUID, limit, offset int) ([]models.Transaction, error)
	CountTransactions(walletID uuid.UUID) (int64, error)

	// Atomicity
	ExecuteInTransaction(fn func(WalletRepository) error) error

	// Reporting
	TotalBalanceByCurrency() ([]CurrencyBalance, error)
	CountWallets() (int64, error)
}

// CurrencyBalance aggregates wallet balances per currency.
type CurrencyBalance struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
	Wallets  int64           `json:"wallets"`
}
