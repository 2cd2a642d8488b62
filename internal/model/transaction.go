package model

import "time"

type ClearedState string

const (
	Uncleared  ClearedState = "uncleared"
	Cleared    ClearedState = "cleared"
	Reconciled ClearedState = "reconciled"
)

// Transaction is an immutable movement on a single account.
// Amount is a signed delta in minor units; Date is truncated to the day.
type Transaction struct {
	ID        string
	AccountID string
	Date      time.Time
	Amount    int64
	Cleared   ClearedState
	Memo      string
}

// Settled reports whether the transaction is reflected in the cleared balance.
func (t Transaction) Settled() bool {
	return t.Cleared == Cleared || t.Cleared == Reconciled
}
