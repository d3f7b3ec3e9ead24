package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents one parsed bank-statement row.
type Expense struct {
	ID          int64
	Party       string // payee name, whitespace-normalized
	Description string // purpose free text, whitespace-normalized
	Amount      decimal.Decimal // negative = outflow, positive = inflow
	Date        time.Time
	StoreID     *int64 // nil = unclassified
	ImportID    string // batch the row arrived in
}

// Outflow reports whether the expense is money leaving the account.
func (e Expense) Outflow() bool {
	return e.Amount.IsNegative()
}
