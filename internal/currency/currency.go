// Package currency implements fixed-rate conversion between the supported
// currencies. Rates are process-wide constants expressed against a USD base;
// the effective rate for any ordered pair is derived through USD, so the pair
// table is complete and reciprocal-consistent.
package currency

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Supported currency codes.
const (
	USD = "USD"
	EUR = "EUR"
	RUB = "RUB"
)

var (
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

// rates maps a currency code to how many units one USD buys.
var rates = map[string]decimal.Decimal{
	USD: decimal.NewFromInt(1),
	EUR: decimal.RequireFromString("0.90"),
	RUB: decimal.NewFromInt(90),
}

// feeRate is the fee charged on the converted amount of any cross-currency
// operation. 0.01 == 1%.
var feeRate = decimal.RequireFromString("0.01")

// Quantize rounds a monetary amount to 2 fractional digits, half-up.
// Every amount is quantized before storage and before comparison against zero.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// IsSupported reports whether code is a known currency.
func IsSupported(code string) bool {
	_, ok := rates[code]
	return ok
}

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	// Net is the amount credited/debited after conversion and fee.
	Net decimal.Decimal
	// Fee is the portion consumed by the cross-currency fee (zero when
	// from == to). The fee is not persisted separately; it only reduces Net.
	Fee decimal.Decimal
	// Cross is true when the source and target currencies differ.
	Cross bool
}

// Convert turns amount in `from` into `to` using the fixed rate table.
// Same-currency conversion is an identity up to quantization with zero fee.
// Cross-currency conversion applies the fee on the converted amount.
func Convert(amount decimal.Decimal, from, to string) (Conversion, error) {
	if !IsSupported(from) || !IsSupported(to) {
		return Conversion{}, ErrUnsupportedCurrency
	}
	amount = Quantize(amount)
	if !amount.IsPositive() {
		return Conversion{}, ErrInvalidAmount
	}

	if from == to {
		return Conversion{Net: amount, Fee: decimal.Zero}, nil
	}

	// amount -> USD -> target, then quantize before the fee is computed.
	converted := Quantize(amount.Div(rates[from]).Mul(rates[to]))
	fee := Quantize(converted.Mul(feeRate))
	net := Quantize(converted.Sub(fee))

	return Conversion{Net: net, Fee: fee, Cross: true}, nil
}
