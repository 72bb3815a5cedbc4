package transfer

import (
	"context"
	"testing"

	"ledgr/internal/currency"
	"ledgr/internal/models"
	"ledgr/internal/repositories"
	walletsvc "ledgr/internal/services/wallet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	repo *repositories.MemoryWalletRepository
	svc  Service
}

func newFixture() *fixture {
	repo := repositories.NewMemoryWalletRepository()
	return &fixture{
		repo: repo,
		svc:  NewService(repo, nil),
	}
}

// seedWallet creates a wallet directly through the repository so tests can
// set up arbitrary balances (and, for the same-currency case, two wallets
// sharing a currency).
func (f *fixture) seedWallet(t *testing.T, userID uint, code, balance string) *models.Wallet {
	t.Helper()

	wallet := &models.Wallet{UserID: userID, Currency: code}
	require.NoError(t, f.repo.Create(wallet))
	if balance != "" {
		wallet.Balance = dec(balance)
		require.NoError(t, f.repo.Update(wallet))
	}
	return wallet
}

func (f *fixture) balance(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()

	w, err := f.repo.GetByID(id)
	require.NoError(t, err)
	return w.Balance
}

func TestTransfer_SameCurrency(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	from := f.seedWallet(t, 1, currency.USD, "100.00")
	to := f.seedWallet(t, 1, currency.USD, "5.00")

	debitTx, creditTx, err := f.svc.Transfer(ctx, 1, from.ID, to.ID, dec("40.00"))
	require.NoError(t, err)

	// Source decreases by exactly 40.00, destination increases by exactly
	// 40.00: no fee on a same-currency transfer.
	assert.True(t, f.balance(t, from.ID).Equal(dec("60.00")))
	assert.True(t, f.balance(t, to.ID).Equal(dec("45.00")))

	assert.Equal(t, models.TransactionTypeDebit, debitTx.Type)
	assert.Equal(t, from.ID, debitTx.WalletID)
	assert.Equal(t, currency.USD, debitTx.Currency)
	assert.True(t, debitTx.Amount.Equal(dec("40.00")))

	assert.Equal(t, models.TransactionTypeCredit, creditTx.Type)
	assert.Equal(t, to.ID, creditTx.WalletID)
	assert.Equal(t, currency.USD, creditTx.Currency)
	assert.True(t, creditTx.Amount.Equal(dec("40.00")))
}

func TestTransfer_CrossCurrencyFeeOnCreditLeg(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	from := f.seedWallet(t, 1, currency.EUR, "100.00")
	to := f.seedWallet(t, 1, currency.USD, "")

	debitTx, creditTx, err := f.svc.Transfer(ctx, 1, from.ID, to.ID, dec("100.00"))
	require.NoError(t, err)

	// The source loses the full, unconverted amount.
	assert.True(t, f.balance(t, from.ID).IsZero())
	// 100 EUR -> 111.11 USD, minus 1% fee = 110.00 credited.
	assert.True(t, f.balance(t, to.ID).Equal(dec("110.00")), "dest balance = %s", f.balance(t, to.ID))

	assert.True(t, debitTx.Amount.Equal(dec("100.00")))
	assert.Equal(t, currency.EUR, debitTx.Currency)
	assert.True(t, creditTx.Amount.Equal(dec("110.00")))
	assert.Equal(t, currency.USD, creditTx.Currency)
}

func TestTransfer_InsufficientFundsLeavesStateUntouched(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	from := f.seedWallet(t, 1, currency.USD, "10.00")
	to := f.seedWallet(t, 1, currency.EUR, "")

	_, _, err := f.svc.Transfer(ctx, 1, from.ID, to.ID, dec("50.00"))
	assert.ErrorIs(t, err, walletsvc.ErrInsufficientFunds)

	assert.True(t, f.balance(t, from.ID).Equal(dec("10.00")))
	assert.True(t, f.balance(t, to.ID).IsZero())

	fromCount, err := f.repo.CountTransactions(from.ID)
	require.NoError(t, err)
	toCount, err := f.repo.CountTransactions(to.ID)
	require.NoError(t, err)
	assert.Zero(t, fromCount)
	assert.Zero(t, toCount)
}

func TestTransfer_SameWalletRejected(t *testing.T) {
	f := newFixture()

	w := f.seedWallet(t, 1, currency.USD, "10.00")

	_, _, err := f.svc.Transfer(context.Background(), 1, w.ID, w.ID, dec("5.00"))
	assert.ErrorIs(t, err, ErrSameWallet)
}

func TestTransfer_ForbiddenForForeignWallet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	mine := f.seedWallet(t, 1, currency.USD, "100.00")
	theirs := f.seedWallet(t, 2, currency.USD, "")

	_, _, err := f.svc.Transfer(ctx, 1, mine.ID, theirs.ID, dec("10.00"))
	assert.ErrorIs(t, err, walletsvc.ErrForbidden)

	_, _, err = f.svc.Transfer(ctx, 2, mine.ID, theirs.ID, dec("10.00"))
	assert.ErrorIs(t, err, walletsvc.ErrForbidden)

	assert.True(t, f.balance(t, mine.ID).Equal(dec("100.00")))
}

func TestTransfer_MissingWallet(t *testing.T) {
	f := newFixture()

	w := f.seedWallet(t, 1, currency.USD, "10.00")

	_, _, err := f.svc.Transfer(context.Background(), 1, w.ID, uuid.New(), dec("5.00"))
	assert.ErrorIs(t, err, walletsvc.ErrWalletNotFound)
}

func TestTransfer_InvalidAmount(t *testing.T) {
	f := newFixture()

	from := f.seedWallet(t, 1, currency.USD, "10.00")
	to := f.seedWallet(t, 1, currency.EUR, "")

	_, _, err := f.svc.Transfer(context.Background(), 1, from.ID, to.ID, decimal.Zero)
	assert.ErrorIs(t, err, walletsvc.ErrInvalidAmount)

	_, _, err = f.svc.Transfer(context.Background(), 1, from.ID, to.ID, dec("-3"))
	assert.ErrorIs(t, err, walletsvc.ErrInvalidAmount)
}
