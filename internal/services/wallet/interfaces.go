package wallet

import (
	"context"

	"ledgr/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is the wallet ledger. It owns wallet balance state: every balance
// mutation goes through ApplyTransaction and commits atomically with its
// audit Transaction row.
type Service interface {
	CreateWallet(ctx context.Context, userID uint, currencyCode string) (*models.Wallet, error)
	GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	ListWallets(ctx context.Context, userID uint) ([]models.Wallet, error)
	ListAllWallets(ctx context.Context) ([]models.Wallet, error)
	ApplyTransaction(ctx context.Context, walletID uuid.UUID, direction string, amount decimal.Decimal, currencyCode string) (*models.Wallet, *models.Transaction, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID, skip, limit int) ([]models.Transaction, int64, error)
}

// Cache is the subset of the cache service the ledger needs.
type Cache interface {
	GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error)
	CacheWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, walletID uuid.UUID) error
}
