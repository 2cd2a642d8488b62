package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/fbar/internal/model"
	"github.com/hance08/fbar/internal/source"
)

type AccountService struct {
	src source.AccountSource
}

func NewAccountService(src source.AccountSource) *AccountService {
	return &AccountService{src: src}
}

// List returns every account of the source sorted by name.
func (as *AccountService) List(ctx context.Context) ([]model.Account, error) {
	accounts, err := as.src.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	sortAccounts(accounts)
	return accounts, nil
}

func sortAccounts(accounts []model.Account) {
	sort.SliceStable(accounts, func(i, j int) bool {
		a, b := strings.ToLower(accounts[i].Name), strings.ToLower(accounts[j].Name)
		if a != b {
			return a < b
		}
		return accounts[i].ID < accounts[j].ID
	})
}
