package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxWalletsPerUser caps how many wallets a single user may own.
const MaxWalletsPerUser = 3

type Wallet struct {
	ID        uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex:idx_wallet_user_currency;not null" json:"user_id"`
	Currency  string          `gorm:"type:varchar(3);uniqueIndex:idx_wallet_user_currency;not null" json:"currency"`
	Balance   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Transactions []Transaction `gorm:"foreignKey:WalletID;constraint:OnDelete:CASCADE" json:"-"`
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	// Balance always starts at 0.00
	w.Balance = decimal.Zero
	return nil
}
