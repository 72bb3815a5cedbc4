package wallet

import "errors"

var (
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrWalletLimitReached = errors.New("user already has maximum number of wallets")
	ErrDuplicateCurrency  = errors.New("wallet with this currency already exists")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidType        = errors.New("transaction type must be credit or debit")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrForbidden          = errors.New("not enough permissions")
)
