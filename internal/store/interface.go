package store

import (
	"context"
	"time"

	"github.com/hance08/fbar/internal/model"
)

type Repository interface {
	// Account Operations
	UpsertAccount(ctx context.Context, acc model.Account, since, syncedAt time.Time) error
	ListAccounts(ctx context.Context) ([]model.Account, error)

	// Transaction Operations
	ReplaceTransactions(ctx context.Context, accountID string, since time.Time, txs []model.Transaction) error
	ListTransactions(ctx context.Context, acc model.Account, since time.Time) ([]model.Transaction, error)

	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
