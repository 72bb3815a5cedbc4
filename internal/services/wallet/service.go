package wallet

import (
	"context"
	"errors"
	"fmt"

	"ledgr/internal/currency"
	"ledgr/internal/models"
	"ledgr/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type service struct {
	repo  repositories.WalletRepository
	cache Cache
}

// NewService creates a new wallet ledger service. cache may be nil.
func NewService(repo repositories.WalletRepository, cache Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{
		repo:  repo,
		cache: cache,
	}
}

// CreateWallet creates a wallet with balance 0.00, enforcing the per-user
// wallet cap and one-wallet-per-currency. The user's wallet rows are locked
// while the checks run so concurrent creates cannot slip past them.
func (s *service) CreateWallet(ctx context.Context, userID uint, currencyCode string) (*models.Wallet, error) {
	if !currency.IsSupported(currencyCode) {
		return nil, currency.ErrUnsupportedCurrency
	}

	var created *models.Wallet
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		existing, err := tx.ListByUserForUpdate(userID)
		if err != nil {
			return err
		}
		if len(existing) >= models.MaxWalletsPerUser {
			return ErrWalletLimitReached
		}
		for _, w := range existing {
			if w.Currency == currencyCode {
				return ErrDuplicateCurrency
			}
		}

		wallet := &models.Wallet{
			UserID:   userID,
			Currency: currencyCode,
			Balance:  decimal.Zero,
		}
		if err := tx.Create(wallet); err != nil {
			return err
		}
		created = wallet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *service) GetWallet(ctx context.Context, walletID uuid.UUID) (*models.Wallet, error) {
	if s.cache != nil {
		if wallet, err := s.cache.GetWallet(ctx, walletID); err == nil {
			return wallet, nil
		}
	}

	wallet, err := s.repo.GetByID(walletID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.CacheWallet(ctx, wallet)
	}
	return wallet, nil
}

func (s *service) ListWallets(ctx context.Context, userID uint) ([]models.Wallet, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) ListAllWallets(ctx context.Context) ([]models.Wallet, error) {
	return s.repo.ListAll()
}

// ApplyTransaction applies a credit or debit to a wallet and records the
// audit Transaction row in the same database transaction. When the supplied
// currency differs from the wallet currency the amount is converted and the
// cross-currency fee consumed; the Transaction row always stores the
// original amount and currency.
func (s *service) ApplyTransaction(ctx context.Context, walletID uuid.UUID, direction string, amount decimal.Decimal, currencyCode string) (*models.Wallet, *models.Transaction, error) {
	if direction != models.TransactionTypeCredit && direction != models.TransactionTypeDebit {
		return nil, nil, ErrInvalidType
	}
	amount = currency.Quantize(amount)
	if !amount.IsPositive() {
		return nil, nil, ErrInvalidAmount
	}
	if !currency.IsSupported(currencyCode) {
		return nil, nil, currency.ErrUnsupportedCurrency
	}

	var (
		wallet *models.Wallet
		record *models.Transaction
	)
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		w, err := tx.GetByIDForUpdate(walletID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrWalletNotFound
			}
			return err
		}

		conv, err := currency.Convert(amount, currencyCode, w.Currency)
		if err != nil {
			return err
		}

		switch direction {
		case models.TransactionTypeCredit:
			w.Balance = currency.Quantize(w.Balance.Add(conv.Net))
		case models.TransactionTypeDebit:
			newBalance := currency.Quantize(w.Balance.Sub(conv.Net))
			if newBalance.IsNegative() {
				return ErrInsufficientFunds
			}
			w.Balance = newBalance
		}

		if err := tx.Update(w); err != nil {
			return err
		}

		record = &models.Transaction{
			WalletID: w.ID,
			Type:     direction,
			Amount:   amount,
			Currency: currencyCode,
		}
		if err := tx.CreateTransaction(record); err != nil {
			return err
		}
		wallet = w
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateWallet(ctx, walletID)
	}
	return wallet, record, nil
}

func (s *service) ListTransactions(ctx context.Context, walletID uuid.UUID, skip, limit int) ([]models.Transaction, int64, error) {
	if _, err := s.GetWallet(ctx, walletID); err != nil {
		return nil, 0, err
	}

	txs, err := s.repo.ListTransactions(walletID, limit, skip)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountTransactions(walletID)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}
