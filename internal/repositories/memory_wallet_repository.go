package repositories

import (
	"sort"
	"sync"
	"time"

	"ledgr/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MemoryWalletRepository is an in-memory WalletRepository used by tests and
// local development. ExecuteInTransaction snapshots state and rolls it back
// on error, mirroring the all-or-nothing behavior of the SQL implementation.
type MemoryWalletRepository struct {
	mu      sync.Mutex
	wallets map[uuid.UUID]models.Wallet
	txs     []models.Transaction
}

func NewMemoryWalletRepository() *MemoryWalletRepository {
	return &MemoryWalletRepository{
		wallets: make(map[uuid.UUID]models.Wallet),
	}
}

func (m *MemoryWalletRepository) Create(wallet *models.Wallet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if wallet.ID == uuid.Nil {
		wallet.ID = uuid.New()
	}
	wallet.Balance = decimal.Zero
	now := time.Now()
	wallet.CreatedAt = now
	wallet.UpdatedAt = now
	m.wallets[wallet.ID] = *wallet
	return nil
}

func (m *MemoryWalletRepository) GetByID(id uuid.UUID) (*models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wallets[id]
	if !ok {
		return nil, ErrWalletNotFound
	}
	cp := w
	return &cp, nil
}

func (m *MemoryWalletRepository) GetByIDForUpdate(id uuid.UUID) (*models.Wallet, error) {
	return m.GetByID(id)
}

func (m *MemoryWalletRepository) ListByUser(userID uint) ([]models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Wallet
	for _, w := range m.wallets {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryWalletRepository) ListByUserForUpdate(userID uint) ([]models.Wallet, error) {
	return m.ListByUser(userID)
}

func (m *MemoryWalletRepository) ListAll() ([]models.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryWalletRepository) Update(wallet *models.Wallet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wallets[wallet.ID]; !ok {
		return ErrWalletNotFound
	}
	wallet.UpdatedAt = time.Now()
	m.wallets[wallet.ID] = *wallet
	return nil
}

func (m *MemoryWalletRepository) CreateTransaction(tx *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		// Strictly increasing so created_at DESC ordering is stable.
		tx.CreatedAt = time.Now().Add(time.Duration(len(m.txs)) * time.Microsecond)
	}
	m.txs = append(m.txs, *tx)
	return nil
}

func (m *MemoryWalletRepository) ListTransactions(walletID uuid.UUID, limit, offset int) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Transaction
	for _, tx := range m.txs {
		if tx.WalletID == walletID {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryWalletRepository) CountTransactions(walletID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var count int64
	for _, tx := range m.txs {
		if tx.WalletID == walletID {
			count++
		}
	}
	return count, nil
}

func (m *MemoryWalletRepository) ExecuteInTransaction(fn func(WalletRepository) error) error {
	m.mu.Lock()
	snapshot := make(map[uuid.UUID]models.Wallet, len(m.wallets))
	for id, w := range m.wallets {
		snapshot[id] = w
	}
	txsLen := len(m.txs)
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.wallets = snapshot
		m.txs = m.txs[:txsLen]
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *MemoryWalletRepository) TotalBalanceByCurrency() ([]CurrencyBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byCurrency := make(map[string]*CurrencyBalance)
	for _, w := range m.wallets {
		cb, ok := byCurrency[w.Currency]
		if !ok {
			cb = &CurrencyBalance{Currency: w.Currency, Total: decimal.Zero}
			byCurrency[w.Currency] = cb
		}
		cb.Total = cb.Total.Add(w.Balance)
		cb.Wallets++
	}

	out := make([]CurrencyBalance, 0, len(byCurrency))
	for _, cb := range byCurrency {
		out = append(out, *cb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func (m *MemoryWalletRepository) CountWallets() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.wallets)), nil
}
