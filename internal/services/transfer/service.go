// Package transfer composes a debit on a source wallet and a credit on a
// destination wallet as one atomic unit, converting between wallet
// currencies when they differ.
package transfer

import (
	"context"
	"errors"

	"ledgr/internal/currency"
	"ledgr/internal/models"
	"ledgr/internal/repositories"
	walletsvc "ledgr/internal/services/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrSameWallet = errors.New("cannot transfer to the same wallet")

// Service moves funds between two wallets of the same user.
type Service interface {
	Transfer(ctx context.Context, userID uint, fromID, toID uuid.UUID, amount decimal.Decimal) (*models.Transaction, *models.Transaction, error)
}

type service struct {
	repo  repositories.WalletRepository
	cache walletsvc.Cache
}

// NewService creates a new transfer service. cache may be nil.
func NewService(repo repositories.WalletRepository, cache walletsvc.Cache) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{
		repo:  repo,
		cache: cache,
	}
}

// Transfer debits amount from the source wallet and credits the converted
// net amount to the destination wallet. The fee is charged only on the
// credit leg conversion. Both wallet rows are locked in a stable order and
// all writes commit atomically; on any failure neither balance changes and
// no transaction rows are created.
func (s *service) Transfer(ctx context.Context, userID uint, fromID, toID uuid.UUID, amount decimal.Decimal) (*models.Transaction, *models.Transaction, error) {
	amount = currency.Quantize(amount)
	if !amount.IsPositive() {
		return nil, nil, walletsvc.ErrInvalidAmount
	}
	if fromID == toID {
		return nil, nil, ErrSameWallet
	}

	var debitTx, creditTx *models.Transaction
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		from, to, err := lockPair(tx, fromID, toID)
		if err != nil {
			return err
		}
		if from.UserID != userID || to.UserID != userID {
			return walletsvc.ErrForbidden
		}

		// Checked in the source currency, before conversion.
		if from.Balance.LessThan(amount) {
			return walletsvc.ErrInsufficientFunds
		}

		conv, err := currency.Convert(amount, from.Currency, to.Currency)
		if err != nil {
			return err
		}

		from.Balance = currency.Quantize(from.Balance.Sub(amount))
		to.Balance = currency.Quantize(to.Balance.Add(conv.Net))

		if err := tx.Update(from); err != nil {
			return err
		}
		if err := tx.Update(to); err != nil {
			return err
		}

		debitTx = &models.Transaction{
			WalletID: from.ID,
			Type:     models.TransactionTypeDebit,
			Amount:   amount,
			Currency: from.Currency,
		}
		creditTx = &models.Transaction{
			WalletID: to.ID,
			Type:     models.TransactionTypeCredit,
			Amount:   conv.Net,
			Currency: to.Currency,
		}
		if err := tx.CreateTransaction(debitTx); err != nil {
			return err
		}
		return tx.CreateTransaction(creditTx)
	})
	if err != nil {
		return nil, nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateWallet(ctx, fromID)
		_ = s.cache.InvalidateWallet(ctx, toID)
	}
	return debitTx, creditTx, nil
}

// lockPair locks both wallet rows ordered by ID so two opposing transfers
// cannot deadlock each other.
func lockPair(tx repositories.WalletRepository, fromID, toID uuid.UUID) (from, to *models.Wallet, err error) {
	first, second := fromID, toID
	if second.String() < first.String() {
		first, second = second, first
	}

	a, err := tx.GetByIDForUpdate(first)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}
	b, err := tx.GetByIDForUpdate(second)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	if a.ID == fromID {
		return a, b, nil
	}
	return b, a, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, repositories.ErrWalletNotFound) {
		return walletsvc.ErrWalletNotFound
	}
	return err
}
