package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/fbar/internal/constants"
	"github.com/hance08/fbar/internal/model"
)

// UpsertAccount stores acc as synced at syncedAt with every transaction dated
// on or after since. The covered window only reaches back past since when the
// previous sync overlaps it; otherwise the transactions in between are
// missing and the window restarts at since.
func (s *Store) UpsertAccount(ctx context.Context, acc model.Account, since, syncedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, budget_id, name, currency, balance, closed, synced_at, synced_since)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			budget_id    = excluded.budget_id,
			name         = excluded.name,
			currency     = excluded.currency,
			balance      = excluded.balance,
			closed       = excluded.closed,
			synced_since = CASE
				WHEN accounts.synced_since IS NOT NULL
					AND excluded.synced_since <= date(accounts.synced_at, 'unixepoch')
				THEN min(accounts.synced_since, excluded.synced_since)
				ELSE excluded.synced_since
			END,
			synced_at    = excluded.synced_at;
	`, acc.ID, acc.BudgetID, acc.Name, acc.Currency, acc.Balance, acc.Closed,
		syncedAt.Unix(), since.Format(constants.DateFormat))
	if err != nil {
		return fmt.Errorf("failed to upsert account '%s' : %w", acc.Name, err)
	}
	return nil
}

// ListAccounts returns every mirrored account ordered by name.
func (s *Store) ListAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, budget_id, name, currency, balance, closed
		FROM accounts
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var acc model.Account
		if err := rows.Scan(&acc.ID, &acc.BudgetID, &acc.Name, &acc.Currency, &acc.Balance, &acc.Closed); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
