package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction directions
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Transaction is an immutable audit record of a single credit or debit
// applied to a wallet. Amount and Currency are the caller-supplied,
// pre-conversion values; the wallet balance reflects the converted net.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	WalletID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"wallet_id"`
	Type      string          `gorm:"type:varchar(10);not null" json:"type"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Currency  string          `gorm:"type:varchar(3);not null" json:"currency"`
	CreatedAt time.Time       `json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
