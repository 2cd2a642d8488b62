package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/fbar/internal/model"
	"github.com/hance08/fbar/internal/source"
	"github.com/hance08/fbar/internal/store"
	"go.uber.org/zap"
)

var ErrNoUpstream = errors.New("sync needs a remote account source; set token")

type SyncResult struct {
	Accounts     int
	Transactions int
}

// SyncService mirrors a remote account source into the local ledger.
type SyncService struct {
	upstream source.AccountSource
	ledger   store.Repository
	logger   *zap.Logger
	now      func() time.Time
}

func NewSyncService(upstream source.AccountSource, ledger store.Repository, logger *zap.Logger) *SyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncService{upstream: upstream, ledger: ledger, logger: logger, now: time.Now}
}

type accountSnapshot struct {
	account model.Account
	txs     []model.Transaction
}

// Sync fetches every account and its transactions since the given date, then
// writes them in a single database transaction. Nothing is written when any
// fetch fails.
func (ss *SyncService) Sync(ctx context.Context, since time.Time) (SyncResult, error) {
	if ss.upstream == nil {
		return SyncResult{}, ErrNoUpstream
	}
	if ss.ledger == nil {
		return SyncResult{}, errors.New("sync needs a local ledger")
	}

	accounts, err := ss.upstream.ListAccounts(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to get accounts: %w", err)
	}

	snapshots := make([]accountSnapshot, 0, len(accounts))
	for _, acc := range accounts {
		txs, err := ss.upstream.ListTransactions(ctx, acc, since)
		if err != nil {
			return SyncResult{}, fmt.Errorf("failed to get transactions for '%s': %w", acc.Name, err)
		}
		snapshots = append(snapshots, accountSnapshot{account: acc, txs: txs})
	}

	var res SyncResult
	syncedAt := ss.now()

	err = ss.ledger.ExecTx(ctx, func(repo store.Repository) error {
		for _, snap := range snapshots {
			if err := repo.UpsertAccount(ctx, snap.account, since, syncedAt); err != nil {
				return err
			}
			if err := repo.ReplaceTransactions(ctx, snap.account.ID, since, snap.txs); err != nil {
				return fmt.Errorf("account '%s': %w", snap.account.Name, err)
			}
			res.Accounts++
			res.Transactions += len(snap.txs)
		}
		return nil
	})
	if err != nil {
		return SyncResult{}, fmt.Errorf("failed to write ledger: %w", err)
	}

	ss.logger.Info("ledger synced",
		zap.Int("accounts", res.Accounts),
		zap.Int("transactions", res.Transactions),
		zap.Time("since", since))

	return res, nil
}
