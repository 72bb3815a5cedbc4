package wallet

import (
	"context"
	"testing"

	"ledgr/internal/currency"
	"ledgr/internal/models"
	"ledgr/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService() (Service, *repositories.MemoryWalletRepository) {
	repo := repositories.NewMemoryWalletRepository()
	return NewService(repo, nil), repo
}

func TestCreateWallet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 1, currency.USD)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, wallet.ID)
	assert.Equal(t, uint(1), wallet.UserID)
	assert.Equal(t, currency.USD, wallet.Currency)
	assert.True(t, wallet.Balance.IsZero())
}

func TestCreateWallet_EnforcesUserLimit(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for _, code := range []string{currency.USD, currency.EUR, currency.RUB} {
		_, err := svc.CreateWallet(ctx, 1, code)
		require.NoError(t, err)
	}

	// A fourth wallet would need a fourth currency anyway, but the cap
	// check runs first.
	_, err := svc.CreateWallet(ctx, 1, currency.USD)
	assert.ErrorIs(t, err, ErrWalletLimitReached)

	// Other users are unaffected.
	_, err = svc.CreateWallet(ctx, 2, currency.USD)
	assert.NoError(t, err)
}

func TestCreateWallet_EnforcesUniqueCurrency(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateWallet(ctx, 1, currency.EUR)
	require.NoError(t, err)

	_, err = svc.CreateWallet(ctx, 1, currency.EUR)
	assert.ErrorIs(t, err, ErrDuplicateCurrency)
}

func TestCreateWallet_RejectsUnknownCurrency(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateWallet(context.Background(), 1, "GBP")
	assert.ErrorIs(t, err, currency.ErrUnsupportedCurrency)
}

func TestApplyTransaction_CreditThenDebitRestoresBalance(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 1, currency.USD)
	require.NoError(t, err)

	_, _, err = svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeCredit, dec("75.25"), currency.USD)
	require.NoError(t, err)

	updated, _, err := svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeDebit, dec("75.25"), currency.USD)
	require.NoError(t, err)

	assert.True(t, updated.Balance.IsZero(), "balance = %s", updated.Balance)
}

func TestApplyTransaction_CrossCurrencyCredit(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 1, currency.USD)
	require.NoError(t, err)

	// 100 EUR -> 111.11 USD, minus 1% fee (1.11) = 110.00
	updated, record, err := svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeCredit, dec("100"), currency.EUR)
	require.NoError(t, err)

	assert.True(t, updated.Balance.Equal(dec("110.00")), "balance = %s", updated.Balance)

	// The audit row keeps the original, pre-conversion amount and currency.
	assert.True(t, record.Amount.Equal(dec("100.00")))
	assert.Equal(t, currency.EUR, record.Currency)
	assert.Equal(t, models.TransactionTypeCredit, record.Type)
}

func TestApplyTransaction_DebitRejectsOverdraft(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 1, currency.USD)
	require.NoError(t, err)
	_, _, err = svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeCredit, dec("10.00"), currency.USD)
	require.NoError(t, err)

	_, _, err = svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeDebit, dec("50.00"), currency.USD)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// No partial state: balance unchanged, no debit row recorded.
	current, err := svc.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.True(t, current.Balance.Equal(dec("10.00")), "balance = %s", current.Balance)

	count, err := repo.CountTransactions(wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestApplyTransaction_DebitToExactlyZero(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 1, currency.EUR)
	require.NoError(t, err)
	_, _, err = svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeCredit, dec("20.00"), currency.EUR)
	require.NoError(t, err)

	updated, _, err := svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeDebit, dec("20.00"), currency.EUR)
	require.NoError(t, err)
	assert.True(t, updated.Balance.IsZero())
}

func TestApplyTransaction_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 1, currency.USD)
	require.NoError(t, err)

	tests := []struct {
		name      string
		walletID  uuid.UUID
		direction string
		amount    decimal.Decimal
		code      string
		wantErr   error
	}{
		{"zero amount", wallet.ID, models.TransactionTypeCredit, decimal.Zero, currency.USD, ErrInvalidAmount},
		{"negative amount", wallet.ID, models.TransactionTypeDebit, dec("-1"), currency.USD, ErrInvalidAmount},
		{"amount rounds to zero", wallet.ID, models.TransactionTypeCredit, dec("0.004"), currency.USD, ErrInvalidAmount},
		{"bad type", wallet.ID, "transfer", dec("1"), currency.USD, ErrInvalidType},
		{"bad currency", wallet.ID, models.TransactionTypeCredit, dec("1"), "GBP", currency.ErrUnsupportedCurrency},
		{"unknown wallet", uuid.New(), models.TransactionTypeCredit, dec("1"), currency.USD, ErrWalletNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.ApplyTransaction(ctx, tt.walletID, tt.direction, tt.amount, tt.code)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetWallet_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetWallet(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrWalletNotFound)
}

func TestListTransactions_NewestFirstWithPagination(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 1, currency.USD)
	require.NoError(t, err)

	amounts := []string{"1.00", "2.00", "3.00", "4.00", "5.00"}
	for _, a := range amounts {
		_, _, err := svc.ApplyTransaction(ctx, wallet.ID, models.TransactionTypeCredit, dec(a), currency.USD)
		require.NoError(t, err)
	}

	txs, total, err := svc.ListTransactions(ctx, wallet.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, txs, 2)
	assert.True(t, txs[0].Amount.Equal(dec("5.00")))
	assert.True(t, txs[1].Amount.Equal(dec("4.00")))

	txs, _, err = svc.ListTransactions(ctx, wallet.ID, 4, 2)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(dec("1.00")))
}

func TestBalanceNeverNegative(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 9, currency.RUB)
	require.NoError(t, err)

	ops := []struct {
		direction string
		amount    string
	}{
		{models.TransactionTypeDebit, "10.00"}, // rejected, empty wallet
		{models.TransactionTypeCredit, "100.00"},
		{models.TransactionTypeDebit, "60.00"},
		{models.TransactionTypeDebit, "60.00"}, // rejected, only 40 left
		{models.TransactionTypeDebit, "40.00"},
	}

	for _, op := range ops {
		_, _, _ = svc.ApplyTransaction(ctx, wallet.ID, op.direction, dec(op.amount), currency.RUB)

		current, err := svc.GetWallet(ctx, wallet.ID)
		require.NoError(t, err)
		assert.False(t, current.Balance.IsNegative(), "balance went negative: %s", current.Balance)
	}
}
