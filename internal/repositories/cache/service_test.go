package cache

import (
	"context"
	"testing"
	"time"

	"ledgr/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *CacheService {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheService(client, time.Hour)
}

func TestCacheService_WalletRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	wallet := &models.Wallet{
		ID:       uuid.New(),
		UserID:   7,
		Currency: "EUR",
		Balance:  decimal.RequireFromString("42.50"),
	}

	require.NoError(t, svc.CacheWallet(ctx, wallet))

	got, err := svc.GetWallet(ctx, wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, got.ID)
	assert.Equal(t, wallet.Currency, got.Currency)
	assert.True(t, got.Balance.Equal(wallet.Balance))
}

func TestCacheService_GetWalletMiss(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetWallet(context.Background(), uuid.New())
	assert.ErrorIs(t, err, redis.Nil)
}

func TestCacheService_InvalidateWallet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	wallet := &models.Wallet{ID: uuid.New(), UserID: 1, Currency: "USD"}
	require.NoError(t, svc.CacheWallet(ctx, wallet))
	require.NoError(t, svc.InvalidateWallet(ctx, wallet.ID))

	_, err := svc.GetWallet(ctx, wallet.ID)
	assert.ErrorIs(t, err, redis.Nil)
}
