// Package ynab reads accounts and transactions from the YNAB REST API.
package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/hance08/fbar/internal/constants"
	"github.com/hance08/fbar/internal/model"
	"github.com/hance08/fbar/internal/source"
	"github.com/hance08/fbar/internal/utils"
	"go.uber.org/zap"
)

// Client is a read-only YNAB API client. It implements source.AccountSource.
type Client struct {
	baseURL       string
	token         string
	budgetID      string
	includeClosed bool
	http          *http.Client
	logger        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the request timeout on a copy of the HTTP client, so a
// client passed to WithHTTPClient is left untouched.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithBudget restricts ListAccounts to a single budget.
func WithBudget(id string) Option {
	return func(c *Client) {
		c.budgetID = id
	}
}

func WithClosedAccounts(include bool) Option {
	return func(c *Client) {
		c.includeClosed = include
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

var _ source.AccountSource = (*Client)(nil)

// NewClient creates a client that authenticates every request with token.
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		token:         token,
		includeClosed: true,
		http:          &http.Client{Timeout: 15 * time.Second},
		logger:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type budget struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CurrencyFormat *struct {
		ISOCode string `json:"iso_code"`
	} `json:"currency_format"`
}

type account struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ClearedBalance int64  `json:"cleared_balance"`
	Closed         bool   `json:"closed"`
	Deleted        bool   `json:"deleted"`
}

type transaction struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Date      string `json:"date"`
	Amount    int64  `json:"amount"`
	Memo      string `json:"memo"`
	Cleared   string `json:"cleared"`
	Deleted   bool   `json:"deleted"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type apiError struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}

// ListAccounts returns every non-deleted account across the user's budgets.
// Balances are the cleared balances in minor units.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var budgets envelope[struct {
		Budgets []budget `json:"budgets"`
	}]
	if err := c.get(ctx, "list budgets", "/budgets", nil, &budgets); err != nil {
		return nil, err
	}

	var accounts []model.Account
	for _, b := range budgets.Data.Budgets {
		if c.budgetID != "" && b.ID != c.budgetID {
			continue
		}

		currency := ""
		if b.CurrencyFormat != nil {
			currency = b.CurrencyFormat.ISOCode
		}

		var resp envelope[struct {
			Accounts []account `json:"accounts"`
		}]
		path := "/budgets/" + url.PathEscape(b.ID) + "/accounts"
		if err := c.get(ctx, "list accounts", path, nil, &resp); err != nil {
			return nil, err
		}

		for _, a := range resp.Data.Accounts {
			if a.Deleted || (a.Closed && !c.includeClosed) {
				continue
			}
			accounts = append(accounts, model.Account{
				ID:       a.ID,
				BudgetID: b.ID,
				Name:     a.Name,
				Currency: currency,
				Balance:  utils.MilliunitsToMinor(a.ClearedBalance),
				Closed:   a.Closed,
			})
		}

		c.logger.Debug("loaded budget accounts",
			zap.String("budget", b.Name),
			zap.Int("accounts", len(resp.Data.Accounts)))
	}

	return accounts, nil
}

// ListTransactions returns the cleared and reconciled transactions of acc
// dated on or after since, most recent first.
func (c *Client) ListTransactions(ctx context.Context, acc model.Account, since time.Time) ([]model.Transaction, error) {
	var resp envelope[struct {
		Transactions []transaction `json:"transactions"`
	}]

	path := "/budgets/" + url.PathEscape(acc.BudgetID) + "/accounts/" + url.PathEscape(acc.ID) + "/transactions"
	query := url.Values{}
	if !since.IsZero() {
		query.Set("since_date", since.Format(constants.DateFormat))
	}

	if err := c.get(ctx, "list transactions", path, query, &resp); err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(resp.Data.Transactions))
	for _, t := range resp.Data.Transactions {
		if t.Deleted {
			continue
		}

		date, err := time.Parse(constants.DateFormat, t.Date)
		if err != nil {
			return nil, &source.AccessError{
				Op:  "list transactions",
				Err: fmt.Errorf("transaction %s has invalid date %q: %w", t.ID, t.Date, err),
			}
		}

		tx := model.Transaction{
			ID:        t.ID,
			AccountID: acc.ID,
			Date:      date,
			Amount:    utils.MilliunitsToMinor(t.Amount),
			Cleared:   model.ClearedState(t.Cleared),
			Memo:      t.Memo,
		}
		if !tx.Settled() {
			continue
		}
		txs = append(txs, tx)
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})

	c.logger.Debug("loaded transactions",
		zap.String("account", acc.Name),
		zap.Int("received", len(resp.Data.Transactions)),
		zap.Int("settled", len(txs)))

	return txs, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &source.AccessError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &source.AccessError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("ynab request",
		zap.String("op", op),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		detail := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Detail != "" {
			detail = apiErr.Error.Detail
		}
		return source.NewStatusError(op, resp.StatusCode, detail)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &source.AccessError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
