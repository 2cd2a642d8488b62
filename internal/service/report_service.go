package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hance08/fbar/internal/balance"
	"github.com/hance08/fbar/internal/config"
	"github.com/hance08/fbar/internal/model"
	"github.com/hance08/fbar/internal/source"
	"github.com/hance08/fbar/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReportRow is one account's maximum balance for the report year.
type ReportRow struct {
	AccountID string
	Name      string
	Result    balance.Result
	// MaxReporting is Result.Max in reporting minor units.
	MaxReporting int64
}

func (r ReportRow) NoActivity() bool {
	return r.Result.NoActivity
}

type Report struct {
	Year      int
	Rate      decimal.Decimal
	Source    config.Currency
	Reporting config.Currency
	Rows      []ReportRow
}

type ReportService struct {
	src    source.AccountSource
	cfg    *config.Config
	logger *zap.Logger
	now    func() time.Time
}

func NewReportService(src source.AccountSource, cfg *config.Config, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{src: src, cfg: cfg, logger: logger, now: time.Now}
}

// Build computes the report for every account of the source. Any source
// failure aborts the build and no rows are returned.
func (rs *ReportService) Build(ctx context.Context) (*Report, error) {
	now := rs.now()
	if err := rs.cfg.ValidateReport(now); err != nil {
		return nil, err
	}

	year := rs.cfg.Year
	rate := rs.cfg.Rate()
	since := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	accounts, err := rs.src.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	rows := make([]ReportRow, 0, len(accounts))
	for _, acc := range accounts {
		txs, err := rs.src.ListTransactions(ctx, acc, since)
		if err != nil {
			return nil, fmt.Errorf("failed to get transactions for '%s': %w", acc.Name, err)
		}

		entries := toEntries(txs)
		if !balance.Ordered(entries) {
			rs.logger.Warn("transactions not ordered most recent first, sorting",
				zap.String("account", acc.Name))
		}

		res := balance.MaxBalance(acc.Balance, entries, year, balance.WithAsOf(now))
		row := ReportRow{AccountID: acc.ID, Name: acc.Name, Result: res}

		if !res.NoActivity {
			row.MaxReporting, err = utils.ConvertMinor(res.Max, rate)
			if err != nil {
				return nil, err
			}
		}

		rs.logger.Debug("computed max balance",
			zap.String("account", acc.Name),
			zap.Int("transactions", len(txs)),
			zap.Bool("no_activity", res.NoActivity),
			zap.Int64("max", res.Max))

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := strings.ToLower(rows[i].Name), strings.ToLower(rows[j].Name)
		if a != b {
			return a < b
		}
		return rows[i].AccountID < rows[j].AccountID
	})

	return &Report{
		Year:      year,
		Rate:      rate,
		Source:    rs.cfg.Currency.Source,
		Reporting: rs.cfg.Currency.Reporting,
		Rows:      rows,
	}, nil
}

func toEntries(txs []model.Transaction) []balance.Entry {
	entries := make([]balance.Entry, len(txs))
	for i, tx := range txs {
		entries[i] = balance.Entry{Date: tx.Date, Amount: tx.Amount}
	}
	return entries
}
