package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/fbar/internal/constants"
	"github.com/hance08/fbar/internal/model"
	"github.com/hance08/fbar/internal/source"
	sqlite "github.com/mattn/go-sqlite3"
)

// ReplaceTransactions drops the account's transactions dated on or after
// since and inserts txs in their place. Callers wrap it in ExecTx.
func (s *Store) ReplaceTransactions(ctx context.Context, accountID string, since time.Time, txs []model.Transaction) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM transactions
		WHERE account_id = ? AND date >= ?
	`, accountID, since.Format(constants.DateFormat))
	if err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	stmt, err := s.db.PrepareContext(ctx, `
		INSERT INTO transactions (id, account_id, date, amount, cleared, memo)
		VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer stmt.Close()

	for _, tx := range txs {
		_, err := stmt.ExecContext(ctx, tx.ID, accountID, tx.Date.Format(constants.DateFormat), tx.Amount, string(tx.Cleared), tx.Memo)
		if err != nil {
			var sqliteErr sqlite.Error
			if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
				return fmt.Errorf("transaction %s: %w", tx.ID, ErrConstraintViolation)
			}
			return fmt.Errorf("failed to insert transaction %s: %w", tx.ID, err)
		}
	}

	return nil
}

// ListTransactions returns the account's transactions dated on or after
// since, most recent first. It fails with a *source.AccessError wrapping
// ErrWindowNotSynced when the ledger does not hold every transaction since
// that date.
func (s *Store) ListTransactions(ctx context.Context, acc model.Account, since time.Time) ([]model.Transaction, error) {
	if err := s.checkWindow(ctx, acc, since); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, date, amount, cleared, memo
		FROM transactions
		WHERE account_id = ? AND date >= ?
		ORDER BY date DESC, id DESC
	`, acc.ID, since.Format(constants.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		var (
			tx      model.Transaction
			date    string
			cleared string
		)
		if err := rows.Scan(&tx.ID, &tx.AccountID, &date, &tx.Amount, &cleared, &tx.Memo); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Date, err = time.Parse(constants.DateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("transaction %s has invalid date %q: %w", tx.ID, date, err)
		}
		tx.Cleared = model.ClearedState(cleared)

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

func (s *Store) checkWindow(ctx context.Context, acc model.Account, since time.Time) error {
	var synced sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT synced_since FROM accounts WHERE id = ?", acc.ID).Scan(&synced)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to query synced window: %w", err)
	}

	want := since.Format(constants.DateFormat)
	if synced.Valid && synced.String <= want {
		return nil
	}

	detail := fmt.Sprintf("ledger has no transactions for '%s'; run fbar sync --since %s", acc.Name, want)
	if synced.Valid {
		detail = fmt.Sprintf("ledger holds transactions for '%s' from %s only; run fbar sync --since %s",
			acc.Name, synced.String, want)
	}
	return &source.AccessError{Op: "list transactions", Detail: detail, Err: ErrWindowNotSynced}
}
