package service

import (
	"context"
	"time"

	"github.com/hance08/fbar/internal/model"
)

type fakeSource struct {
	accounts []model.Account
	txs      map[string][]model.Transaction
	listErr  error
	txErr    map[string]error
	sinces   []time.Time
}

func (f *fakeSource) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Account, len(f.accounts))
	copy(out, f.accounts)
	return out, nil
}

func (f *fakeSource) ListTransactions(ctx context.Context, acc model.Account, since time.Time) ([]model.Transaction, error) {
	f.sinces = append(f.sinces, since)
	if err := f.txErr[acc.ID]; err != nil {
		return nil, err
	}

	var out []model.Transaction
	for _, tx := range f.txs[acc.ID] {
		if !tx.Date.Before(since) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(id, date string, amount int64) model.Transaction {
	return model.Transaction{ID: id, Date: day(date), Amount: amount, Cleared: model.Cleared}
}

// ingFixture is an ING account whose balance peaks at €2651.48 on
// 2021-02-01 only and is back at that value by early 2022.
func ingFixture() *fakeSource {
	return &fakeSource{
		accounts: []model.Account{
			{ID: "acc-ing", BudgetID: "b1", Name: "ING", Currency: "EUR", Balance: 265148},
			{ID: "acc-n26", BudgetID: "b1", Name: "n26", Currency: "EUR", Balance: 1000},
			{ID: "acc-abn", BudgetID: "b1", Name: "ABN Amro", Currency: "EUR", Balance: 5000},
		},
		txs: map[string][]model.Transaction{
			"acc-ing": {
				tx("t6", "2022-01-20", 50000),
				tx("t5", "2021-11-30", -20000),
				tx("t4", "2021-02-02", -30000),
				tx("t3", "2021-02-01", 65148),
				tx("t2", "2021-01-15", 50000),
				tx("t1", "2020-12-01", 150000),
			},
			"acc-n26": {
				tx("n1", "2021-07-17", -50),
				tx("n2", "2021-07-17", 20),
			},
		},
	}
}
