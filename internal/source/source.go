// Package source defines the capability the report reads accounts and
// transactions from.
package source

import (
	"context"
	"time"

	"github.com/hance08/fbar/internal/model"
)

// AccountSource lists accounts and their settled transactions.
// ListTransactions returns transactions dated on or after since, most recent
// first.
type AccountSource interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	ListTransactions(ctx context.Context, acc model.Account, since time.Time) ([]model.Transaction, error)
}
